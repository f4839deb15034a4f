package diag

import (
	"testing"

	"lilc/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("golden/sample.lc", []byte("int x;\nint x;\n"))

	diags := []*Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexIntOverflow,
			Message:  "integer literal too large;\nusing max value",
			Primary:  source.Span{File: file, Start: 11, End: 12},
		},
		{
			Severity: SevError,
			Code:     SemaMultiplyDeclared,
			Subject:  "x",
			Message:  `multiply declared identifier "x"`,
			Primary:  source.Span{File: file, Start: 11, End: 12},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 4, End: 5}, Msg: "previous declaration here"},
			},
		},
	}

	expected := "note SEM3001 golden/sample.lc:1:5 previous declaration here\n" +
		"error SEM3001 golden/sample.lc:2:5 multiply declared identifier \"x\"\n" +
		"warning LEX1004 golden/sample.lc:2:5 integer literal too large; using max value"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatGoldenDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output for no diagnostics, got %q", got)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:       "LEX1001",
		SynExpectSemicolon:   "SYN2002",
		SemaMultiplyDeclared: "SEM3001",
		SemaBadWriteType:     "SEM3115",
		IOLoadFileError:      "IO4001",
		ProjInvalidConfig:    "PRJ5001",
		ObsTimings:           "OBS6001",
		UnknownCode:          "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID() = %s, want %s", code, got, want)
		}
	}
	if SemaUndeclared.Title() != "Undeclared identifier" {
		t.Errorf("unexpected title %q", SemaUndeclared.Title())
	}
	if Code(3999).Title() != UnknownCode.Title() {
		t.Errorf("unknown code must fall back to UnknownCode title")
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	mk := func(code Code, start uint32) *Diagnostic {
		d := NewError(code, source.Span{Start: start, End: start + 1}, code.Title())
		return &d
	}
	bag.Add(mk(SemaUndeclared, 10))
	bag.Add(mk(SemaMultiplyDeclared, 2))
	bag.Add(mk(SemaBadCallee, 5))
	if bag.Add(mk(SemaBadCallee, 0)) {
		t.Fatalf("bag accepted a diagnostic over its limit")
	}
	bag.Sort()
	if bag.Len() != 3 {
		t.Fatalf("Len = %d, want 3", bag.Len())
	}
	if bag.Items()[0].Code != SemaMultiplyDeclared {
		t.Fatalf("sort did not order by position: %v", bag.Items()[0].Code)
	}
	if total, errs := bag.Dropped(); total != 1 || errs != 1 {
		t.Fatalf("Dropped = %d, %d; want 1, 1", total, errs)
	}
}

func TestBagDroppedErrorStillCounts(t *testing.T) {
	bag := NewBag(1)
	ReportWarning(BagReporter{Bag: bag}, LexIntOverflow, source.Span{}, "overflow").Emit()
	ReportError(BagReporter{Bag: bag}, SemaMultiplyDeclared, source.Span{Start: 4, End: 5}, "x redeclared").Emit()

	if bag.Len() != 1 || bag.Items()[0].Code != LexIntOverflow {
		t.Fatalf("bag kept %+v", bag.Items())
	}
	if !bag.HasErrors() {
		t.Fatalf("HasErrors = false with a dropped error")
	}

	merged := NewBag(0)
	merged.Merge(bag)
	if total, errs := merged.Dropped(); total != 1 || errs != 1 || !merged.HasErrors() {
		t.Fatalf("Merge lost dropped counts: %d, %d", total, errs)
	}

	warnOnly := NewBag(1)
	ReportWarning(BagReporter{Bag: warnOnly}, LexIntOverflow, source.Span{}, "a").Emit()
	ReportWarning(BagReporter{Bag: warnOnly}, LexIntOverflow, source.Span{Start: 9}, "b").Emit()
	if warnOnly.HasErrors() {
		t.Fatalf("dropped warnings must not count as errors")
	}
}

func TestCountingReporter(t *testing.T) {
	bag := NewBag(0)
	counter := &CountingReporter{Next: BagReporter{Bag: bag}}
	ReportError(counter, SemaUndeclared, source.Span{}, "undeclared").WithSubject("y").Emit()
	ReportWarning(counter, LexIntOverflow, source.Span{}, "overflow").Emit()

	if counter.Total() != 2 || counter.Errors() != 1 {
		t.Fatalf("Total=%d Errors=%d", counter.Total(), counter.Errors())
	}
	if bag.Len() != 2 || bag.Items()[0].Subject != "y" {
		t.Fatalf("bag not fed through: %+v", bag.Items())
	}
}
