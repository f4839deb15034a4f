package diagfmt

import (
	"fmt"
	"io"

	"lilc/internal/diag"
	"lilc/internal/source"
)

// Short prints one line per diagnostic: path:line:col: SEV CODE: message.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(fs, fs.Get(d.Primary.File), mode), start.Line, start.Col,
			d.Severity, d.Code.ID(), d.Message)
	}
}
