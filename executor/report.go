package executor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/LyricLy/minefair"
)

// WriteReport writes entries on a single line, e.g. "[(1, 3), (2, 2)]".
func WriteReport(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("[")
	for i, entry := range entries {
		if i > 0 {
			_, _ = bw.WriteString(", ")
		}
		_, _ = fmt.Fprintf(bw, "(%s, %d)", minefair.FormatFloat(entry.Density), entry.Count)
	}
	_, _ = bw.WriteString("]\n")
	return bw.Flush()
}

// NewDiagnosticPrinter returns an Observer that writes two lines per record:
// its index and offset, then its width and height.  Write errors are
// dropped; callers that care should check w when the scan is done (a
// bufio.Writer reports them on Flush).
func NewDiagnosticPrinter(w io.Writer) minefair.Observer {
	return func(r *minefair.Record) {
		_, _ = fmt.Fprintf(
			w,
			"%d %d\n%s %s\n",
			r.Index,
			r.Offset,
			minefair.FormatFloat(r.Width),
			minefair.FormatFloat(r.Height))
	}
}
