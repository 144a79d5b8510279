package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/srodi/procmon/pkg/types"
)

// View is the read-only access the renderer needs; *types.Snapshot satisfies it.
type View interface {
	Len() int
	At(i int) types.Process
}

// reservedRows covers the header, the column titles and a trailing line.
const reservedRows = 3

// Rows returns how many entries fit in a display of the given height.
// A non-positive height draws every entry.
func Rows(v View, height int) int {
	n := v.Len()
	if height <= 0 {
		return n
	}
	if fit := height - reservedRows; fit < n {
		return max(fit, 0)
	}
	return n
}

// Render writes one frame: header, column titles and one fixed-width row per
// entry that fits in height.
func Render(w io.Writer, v View, height int, color bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header(color))

	columns := fmt.Sprintf("%-6s %-20s %-10s %-8s", "PID", "NAME", "USER", "MEM(KB)")
	if color {
		columns = bold + columnMint + columns + reset
	}
	fmt.Fprintln(bw, columns)

	for i, n := 0, Rows(v, height); i < n; i++ {
		p := v.At(i)
		fmt.Fprintf(bw, "%-6d %-20s %-10s %-8d\n", p.PID, p.Name, p.Username, p.MemoryKB)
	}
	return bw.Flush()
}
