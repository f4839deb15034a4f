package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lilc/internal/diag"
	"lilc/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("int x;\nstring s = \"unterminated\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.lc", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 18, End: 31},
		"unterminated string literal",
	)
	bag.Add(&d)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.lc"},
		{"Relative path", PathModeRelative, "src/test.lc"},
		{"Basename only", PathModeBasename, "test.lc:2:12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()
	tests := []struct {
		path     string
		expected string
	}{
		{"test.lc", "test.lc:1:5"},
		{"/very/long/absolute/path/to/some/nested/directory/file.lc", "file.lc:1:5"},
	}
	for _, tt := range tests {
		fileID := fs.AddVirtual(tt.path, []byte("int x;\n"))
		bag := diag.NewBag(1)
		d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 4, End: 5}, "test warning")
		bag.Add(&d)

		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
		if !strings.HasPrefix(buf.String(), tt.expected) {
			t.Errorf("%s: expected prefix %q, got:\n%s", tt.path, tt.expected, buf.String())
		}
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.lc", []byte("int x;\nvoid f() {\n\tx = true;\n}\n"))

	bag := diag.NewBag(1)
	// `x = true` на третьей строке
	d := diag.New(diag.SevError, diag.SemaAssignTypeMismatch, source.Span{File: fileID, Start: 19, End: 27},
		"type mismatch: cannot assign bool to int")
	bag.Add(&d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})
	want := strings.Join([]string{
		"a.lc:3:2: ERROR SEM3105: type mismatch: cannot assign bool to int",
		"2 | void f() {",
		"3 |     x = true;",
		"  |     ^~~~~~~~",
		"4 | }",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	src := "cout << \"日本\" + y;\n"
	fileID := fs.AddVirtual("w.lc", []byte(src))
	start := uint32(strings.Index(src, "y"))

	bag := diag.NewBag(1)
	d := diag.NewError(diag.SemaUndeclared, source.Span{File: fileID, Start: start, End: start + 1}, `undeclared identifier "y"`)
	bag.Add(&d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// два широких символа занимают четыре колонки
	caret := strings.Index(lines[2], "^")
	if want := strings.Index(lines[1], "|") + 2 + 17; caret != want {
		t.Errorf("caret at column %d, want %d:\n%s", caret, want, buf.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lc", []byte("int x;\nint x;\n"))

	bag := diag.NewBag(4)
	d := diag.NewError(diag.SemaMultiplyDeclared, source.Span{File: fileID, Start: 11, End: 12}, `multiply declared identifier "x"`).
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "previous declaration here")
	bag.Add(&d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes printed without ShowNotes:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	if !strings.Contains(buf.String(), "note: test.lc:1:5: previous declaration here") {
		t.Fatalf("expected note with location, got:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.lc", []byte("y;\n"))
	bag := diag.NewBag(1)
	d := diag.NewError(diag.SemaUndeclared, source.Span{File: fileID, Start: 0, End: 1}, "undeclared")
	bag.Add(&d)

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("escape codes without Color:\n%q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("no escape codes with Color:\n%q", colored.String())
	}
}

func TestPrettyWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("l.lc", []byte("int averyveryverylongidentifiername;\n"))
	bag := diag.NewBag(1)
	d := diag.NewError(diag.SemaInfo, source.Span{File: fileID, Start: 0, End: 3}, "long")
	bag.Add(&d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Width: 12})
	if !strings.Contains(buf.String(), "1 | int avery...\n") {
		t.Fatalf("line not clipped:\n%s", buf.String())
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("s.lc", []byte("int x;\nint x;\n"))
	bag := diag.NewBag(2)
	d := diag.NewError(diag.SemaMultiplyDeclared, source.Span{File: fileID, Start: 11, End: 12}, `multiply declared identifier "x"`)
	bag.Add(&d)

	var buf bytes.Buffer
	Short(&buf, bag, fs, PathModeAuto)
	if want := "s.lc:2:5: ERROR SEM3001: multiply declared identifier \"x\"\n"; buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
