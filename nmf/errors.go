package nmf

import "errors"

// Error kinds reported by the mapping parser, topology construction and the
// numbering engine. All are fatal for the current conversion; wrapped values
// carry the offending block/surface/entry context and callers test the kind
// with errors.Is.
var (
	ErrParse            = errors.New("malformed mapping declaration")
	ErrRange            = errors.New("index out of range")
	ErrUnknownBC        = errors.New("unknown boundary condition")
	ErrDuplicateLink    = errors.New("surface claimed by more than one interface")
	ErrTopology         = errors.New("inconsistent topology")
	ErrInconsistentGrid = errors.New("mapping and coordinate grid disagree")
)
