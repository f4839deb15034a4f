package unparse

import (
	"bytes"
	"context"
	"fmt"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/parser"
	"lilc/internal/source"
)

// Reparse parses canonical text produced by Format into a fresh builder.
// Any diagnostic turns into an error.
func Reparse(ctx context.Context, name string, text []byte) (*ast.Builder, ast.FileID, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, text)
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(ctx, fs, lx, builder, parser.Options{Reporter: rep, MaxErrors: 16})
	if bag.Len() > 0 {
		first := bag.Items()[0]
		return nil, ast.NoFileID, fmt.Errorf("unparse: reparse %s: %s %s", name, first.Code.ID(), first.Message)
	}
	return builder, res.File, nil
}

// CheckRoundTrip prints the file, parses the output again and prints the new
// tree. Both printouts must be identical.
func CheckRoundTrip(ctx context.Context, b *ast.Builder, fid ast.FileID, name string) error {
	first, err := Format(b, fid, Options{})
	if err != nil {
		return err
	}
	rb, rfid, err := Reparse(ctx, name, first)
	if err != nil {
		return err
	}
	second, err := Format(rb, rfid, Options{})
	if err != nil {
		return err
	}
	if bytes.Equal(first, second) {
		return nil
	}
	return fmt.Errorf("unparse: %s changed after round-trip at line %d", name, firstDiffLine(first, second))
}

func firstDiffLine(a, b []byte) int {
	la := bytes.Split(a, []byte{'\n'})
	lb := bytes.Split(b, []byte{'\n'})
	for i := range min(len(la), len(lb)) {
		if !bytes.Equal(la[i], lb[i]) {
			return i + 1
		}
	}
	return min(len(la), len(lb)) + 1
}
