package nmf

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteTo re-emits the mapping declaration in the standard column layout.
func (m *Mapping) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# ======================== Neutral Map File generated by the Grid-Glue software ==============================")
	fmt.Fprintln(bw, "# ============================================================================================================")
	fmt.Fprintln(bw, "# Block#    IDIM    JDIM    KDIM")
	fmt.Fprintln(bw, "# ------------------------------------------------------------------------------------------------------------")

	fmt.Fprintf(bw, "%8d\n", m.NumOfBlk())
	for n := 1; n <= m.NumOfBlk(); n++ {
		b := m.Block(n)
		fmt.Fprintf(bw, "%8d%8d%8d%8d\n", n, b.NI, b.NJ, b.NK)
	}

	fmt.Fprintln(bw, "# ============================================================================================================")
	fmt.Fprintln(bw, "# Type           B1    F1       S1    E1       S2    E2       B2    F2       S1    E1       S2    E2      Swap")
	fmt.Fprintln(bw, "# ------------------------------------------------------------------------------------------------------------")
	for _, e := range m.entry {
		fmt.Fprintf(bw, "%-13s%6d%6d%9d%6d%9d%6d",
			e.Kind, e.Rg1.Blk, e.Rg1.Face, e.Rg1.S1, e.Rg1.E1, e.Rg1.S2, e.Rg1.E2)
		if e.DoubleSided() {
			swap := "FALSE"
			if e.Swap {
				swap = "TRUE"
			}
			fmt.Fprintf(bw, "%9d%6d%9d%6d%9d%6d%10s",
				e.Rg2.Blk, e.Rg2.Face, e.Rg2.S1, e.Rg2.E1, e.Rg2.S2, e.Rg2.E2, swap)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteFile writes the mapping declaration to path.
func (m *Mapping) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.WriteTo(f)
}
