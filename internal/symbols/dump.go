package symbols

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lilc/internal/source"
	"lilc/internal/types"
)

// Dump prints the scope tree rooted at every parentless scope, symbols in
// insertion order. With a non-nil fs each symbol gets its line:col.
func Dump(w io.Writer, table *Table, fs *source.FileSet) error {
	bw := bufio.NewWriter(w)
	for id := ScopeID(1); int(id) <= table.Scopes.Len(); id++ {
		if scope := table.Scopes.Get(id); scope.Parent == NoScopeID {
			dumpScope(bw, table, fs, id, 0)
		}
	}
	return bw.Flush()
}

func dumpScope(w *bufio.Writer, table *Table, fs *source.FileSet, id ScopeID, depth int) {
	scope := table.Scopes.Get(id)
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%sscope #%d %s\n", indent, id, scope.Kind)
	for _, symID := range scope.Symbols {
		fmt.Fprintf(w, "%s  %s\n", indent, describeSymbol(table, fs, table.Symbols.Get(symID)))
	}
	for _, child := range scope.Children {
		dumpScope(w, table, fs, child, depth+1)
	}
}

// describeSymbol renders "name: kind type [fields] @line:col".
func describeSymbol(table *Table, fs *source.FileSet, sym *Symbol) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s", table.Name(sym.Name), sym.Kind, types.Label(table.Types, sym.Type))
	if sym.Kind == SymbolStruct {
		sb.WriteString(" {")
		for i, f := range sym.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(table.Name(f.Name) + " " + types.Label(table.Types, f.Type))
		}
		sb.WriteString("}")
	}
	if fs != nil {
		start, _ := fs.Resolve(sym.Span)
		fmt.Fprintf(&sb, " @%d:%d", start.Line, start.Col)
	}
	return sb.String()
}
