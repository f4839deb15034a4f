package unparse_test

import (
	"context"
	"strings"
	"testing"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/parser"
	"lilc/internal/source"
	"lilc/internal/symbols"
	"lilc/internal/unparse"
)

const program = `struct S { int a; bool b; };
int g;
int f(int x, bool y) {
  struct S v;
  v.a = x + 1 * 2;
  if (y) { cout << "hi"; } else { v.b = !y; }
  while (x > 0) { x--; }
  g = f(g, true);
  return v.a;
}
`

func parse(t *testing.T, src string) (*ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("unparse.lil", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(context.Background(), fs, lx, b, parser.Options{Reporter: rep})
	if bag.Len() > 0 {
		t.Fatalf("fixture does not parse: %s", bag.Items()[0].Message)
	}
	return b, res.File
}

func TestFormatCanonical(t *testing.T) {
	b, fid := parse(t, program)
	got, err := unparse.Format(b, fid, unparse.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := `struct S {
    int a;
    bool b;
};
int g;
int f(int x, bool y) {
    struct S v;
    v.a = (x + (1 * 2));
    if (y) {
        cout << "hi";
    } else {
        v.b = (!y);
    }
    while ((x > 0)) {
        x--;
    }
    g = f(g, true);
    return v.a;
}
`
	if string(got) != want {
		t.Errorf("canonical output mismatch\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestFormatAnnotated(t *testing.T) {
	b, fid := parse(t, program+"void h() { z = 1; }\n")
	res := symbols.ResolveFile(b, fid, symbols.ResolveOptions{})
	got, err := unparse.Format(b, fid, unparse.Options{Annotate: true, Types: res.Table.Types})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	for _, line := range []string{
		"    v(S).a(int) = (x(int) + (1 * 2));",
		"    if (y(bool)) {",
		"        v(S).b(bool) = (!y(bool));",
		"    while ((x(int) > 0)) {",
		"        x(int)--;",
		"    g(int) = f(int,bool->int)(g(int), true);",
		"    return v(S).a(int);",
		"    z(<error>) = 1;",
	} {
		if !strings.Contains(string(got), line+"\n") {
			t.Errorf("annotated output lacks %q\n%s", line, got)
		}
	}
}

func TestAnnotateNeedsTypes(t *testing.T) {
	b, fid := parse(t, "int x;\nvoid f() { x = 1; }\n")
	got, err := unparse.Format(b, fid, unparse.Options{Annotate: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(string(got), "(int)") {
		t.Errorf("annotations printed without an interner:\n%s", got)
	}
}

func TestNestedAssignmentKeepsParens(t *testing.T) {
	b, fid := parse(t, "void f() { int a; int b; a = b = 1; cout << (a = 2) + 1; }\n")
	got, err := unparse.Format(b, fid, unparse.Options{IndentWidth: 2})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	for _, line := range []string{"  a = b = 1;\n", "  cout << ((a = 2) + 1);\n"} {
		if !strings.Contains(string(got), line) {
			t.Errorf("output lacks %q\n%s", line, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		program,
		"int x;\n",
		"void f() {}\nvoid g() { f(); return; }\n",
		"int f(int a) { if (!(a == 1) || a < -3) { a++; } return -a / 2 - 1; }\n",
	}
	for i, src := range sources {
		b, fid := parse(t, src)
		if err := unparse.CheckRoundTrip(context.Background(), b, fid, "roundtrip.lil"); err != nil {
			t.Errorf("source %d: %v", i, err)
		}
	}
}

func TestRoundTripKeepsNames(t *testing.T) {
	b, fid := parse(t, program)
	text, err := unparse.Format(b, fid, unparse.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	rb, rfid, err := unparse.Reparse(context.Background(), "again.lil", text)
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}
	res := symbols.ResolveFile(rb, rfid, symbols.ResolveOptions{})
	if !res.OK {
		t.Fatalf("reparsed program has name errors: %s", res.Diagnostics[0].Message)
	}
	orig := b.Files.Get(fid).Decls
	again := rb.Files.Get(rfid).Decls
	if len(orig) != len(again) {
		t.Fatalf("decl count %d -> %d", len(orig), len(again))
	}
	for i := range orig {
		if b.Name(b.Decls.Get(orig[i]).Name) != rb.Name(rb.Decls.Get(again[i]).Name) {
			t.Errorf("decl %d renamed", i)
		}
	}
}

func TestFormatRejectsBadInput(t *testing.T) {
	if _, err := unparse.Format(nil, 1, unparse.Options{}); err == nil {
		t.Error("nil builder accepted")
	}
	b := ast.NewBuilder(ast.Hints{}, nil)
	if _, err := unparse.Format(b, ast.NoFileID, unparse.Options{}); err == nil {
		t.Error("invalid file id accepted")
	}
}
