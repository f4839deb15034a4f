package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.lc", []byte("int x;"), 0)
	id2 := fs.Add("test.lc", []byte("int y;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("test.lc")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "int x;" {
		t.Errorf("first version content = %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.lc", []byte("int x;\nbool b;\n\nvoid f() {}\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{6, LineCol{Line: 1, Col: 7}}, // the '\n' itself
		{7, LineCol{Line: 2, Col: 1}},
		{15, LineCol{Line: 3, Col: 1}},
		{16, LineCol{Line: 4, Col: 1}},
		{21, LineCol{Line: 4, Col: 6}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLineAndText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.lc", []byte("int x;\nbool b;"))
	f := fs.Get(id)
	if got := f.GetLine(1); got != "int x;" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "bool b;" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("line 3 = %q, want empty", got)
	}
	if got := fs.Text(Span{File: id, Start: 12, End: 13}); got != "b" {
		t.Errorf("Text = %q, want b", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.lc")
	// BOM + CRLF + decomposed "é" (e + U+0301)
	raw := []byte("\xEF\xBB\xBFint x;\r\n// cafe\u0301\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	want := "int x;\n// caf\u00e9\n"
	if string(f.Content) != want {
		t.Fatalf("content = %q, want %q", f.Content, want)
	}
	for _, flag := range []FileFlags{FileHadBOM, FileNormalizedCRLF, FileNormalizedNFC} {
		if f.Flags&flag == 0 {
			t.Errorf("flag %b not set (flags=%b)", flag, f.Flags)
		}
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("main")
	b := in.Intern(string([]byte("main")))
	if a != b {
		t.Fatalf("same text interned twice: %d vs %d", a, b)
	}
	if in.Intern("") != NoStringID {
		t.Fatalf("empty string must map to NoStringID")
	}
	if s, ok := in.Lookup(a); !ok || s != "main" {
		t.Fatalf("Lookup = %q,%v", s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("unknown id resolved")
	}
	if in.Len() != 2 {
		t.Fatalf("Len = %d, want 2", in.Len())
	}
}
