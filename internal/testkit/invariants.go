package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lilc/internal/ast"
	"lilc/internal/source"
)

// CheckSpanInvariants verifies the spans of a parsed file:
// the file span lies inside the content, every top-level declaration span is
// non-empty and inside the file span, and every block item of a function
// lies inside that function.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node %d not found", fileID)
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to file %d, want %d", f.Span.File, sf.ID)
	}
	if f.Span.End > size || f.Span.Start > f.Span.End {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, size)
	}

	for _, id := range f.Decls {
		decl := b.Decls.Get(id)
		if err := within(decl.Span, f.Span, "decl"); err != nil {
			return err
		}
		fn, ok := b.Decls.Fn(id)
		if !ok {
			continue
		}
		if err := within(fn.Body.Span, decl.Span, "body"); err != nil {
			return err
		}
		for _, it := range fn.Body.Items {
			sp := itemSpan(b, it)
			if err := within(sp, fn.Body.Span, "block item"); err != nil {
				return err
			}
		}
	}
	return nil
}

func itemSpan(b *ast.Builder, it ast.BlockItem) source.Span {
	if it.Decl.IsValid() {
		return b.Decls.Get(it.Decl).Span
	}
	return b.Stmts.Get(it.Stmt).Span
}

func within(inner, outer source.Span, what string) error {
	if inner.End <= inner.Start {
		return fmt.Errorf("empty %s span %v", what, inner)
	}
	if inner.File != outer.File || inner.Start < outer.Start || inner.End > outer.End {
		return fmt.Errorf("%s span %v is outside %v", what, inner, outer)
	}
	return nil
}
