package core

import (
	"fmt"
	"io"
)

// Printer writes a tree between a start and an end banner. The banners are
// the only part a variant changes; the order of the steps is fixed.
type Printer struct {
	Start string
	End   string
}

var ConsolePrinter = Printer{
	Start: "=== Start Printing Structure ===",
	End:   "=== End Printing Structure ===",
}

func (p Printer) Print(w io.Writer, root Node) {
	_, _ = fmt.Fprintln(w, p.Start)
	root.Render(w, "")
	_, _ = fmt.Fprintln(w, p.End)
}
