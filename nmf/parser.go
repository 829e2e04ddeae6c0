package nmf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gridglue/types"
)

// ReadFile reads a mapping declaration file. Blank lines and lines starting
// with '#' are skipped; keywords are case-insensitive with '-' and '_'
// interchangeable. Call ComputeTopology and Numbering on the result before
// gluing.
func ReadFile(path string) (*Mapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads a mapping declaration from r.
func Parse(r io.Reader) (*Mapping, error) {
	sc := &lineScanner{s: bufio.NewScanner(r)}

	// Block count header.
	line, ok := sc.next()
	if !ok {
		return nil, fmt.Errorf("%w: missing block count header", ErrParse)
	}
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: line %d: want a single block count, got %q",
			ErrParse, sc.lineNo, line)
	}
	numOfBlk, err := strconv.Atoi(fields[0])
	if err != nil || numOfBlk <= 0 {
		return nil, fmt.Errorf("%w: line %d: invalid num of blocks %q",
			ErrParse, sc.lineNo, fields[0])
	}

	// Per-block dimensions.
	m := &Mapping{blk: make([]*Block3D, numOfBlk)}
	for n := 0; n < numOfBlk; n++ {
		line, ok = sc.next()
		if !ok {
			return nil, fmt.Errorf("%w: unexpected EOF reading block dimensions", ErrParse)
		}
		fields = strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: want 4 integers, got %q",
				ErrParse, sc.lineNo, line)
		}
		vals, err := atoiFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, sc.lineNo, err)
		}
		idx := vals[0]
		if idx < 1 || idx > numOfBlk {
			return nil, fmt.Errorf("%w: line %d: block index %d outside 1..%d",
				ErrParse, sc.lineNo, idx, numOfBlk)
		}
		if m.blk[idx-1] != nil {
			return nil, fmt.Errorf("%w: line %d: block %d declared twice",
				ErrParse, sc.lineNo, idx)
		}
		b, err := NewBlock3D(vals[1], vals[2], vals[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: block %d: %w", sc.lineNo, idx, err)
		}
		b.Index = idx
		m.blk[idx-1] = b
	}

	// Connectivity entries until EOF.
	for {
		line, ok = sc.next()
		if !ok {
			break
		}
		e, err := parseEntry(line, sc.lineNo)
		if err != nil {
			return nil, err
		}
		m.entry = append(m.entry, e)
	}
	if err = sc.s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m, nil
}

func parseEntry(line string, lineNo int) (*Entry, error) {
	fields := strings.Fields(line)
	kind, ok := types.NewBCFLAG(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: line %d: keyword %q", ErrUnknownBC, lineNo, fields[0])
	}
	e := &Entry{Kind: kind}
	if e.DoubleSided() {
		if len(fields) != 14 {
			return nil, fmt.Errorf("%w: line %d: ONE_TO_ONE wants 12 integers and a swap token, got %d fields",
				ErrParse, lineNo, len(fields)-1)
		}
		vals, err := atoiFields(fields[1:13])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
		}
		e.Rg1 = newRange(vals[0:6])
		e.Rg2 = newRange(vals[6:12])
		switch types.FormalizeBCName(fields[13]) {
		case "TRUE":
			e.Swap = true
		case "FALSE":
			e.Swap = false
		default:
			return nil, fmt.Errorf("%w: line %d: swap token %q is not TRUE or FALSE",
				ErrParse, lineNo, fields[13])
		}
	} else {
		if len(fields) != 7 {
			return nil, fmt.Errorf("%w: line %d: %s wants 6 integers, got %d fields",
				ErrParse, lineNo, kind, len(fields)-1)
		}
		vals, err := atoiFields(fields[1:7])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
		}
		e.Rg1 = newRange(vals)
	}
	return e, nil
}

func newRange(v []int) Range {
	return Range{Blk: v[0], Face: v[1], S1: v[2], E1: v[3], S2: v[4], E2: v[5]}
}

func atoiFields(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		vals[i] = v
	}
	return vals, nil
}

// lineScanner yields content lines, skipping blanks and '#' comments.
type lineScanner struct {
	s      *bufio.Scanner
	lineNo int
}

func (ls *lineScanner) next() (string, bool) {
	for ls.s.Scan() {
		ls.lineNo++
		line := strings.TrimSpace(ls.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}
