package sema_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"lilc/internal/diag"
	"lilc/internal/driver"
	"lilc/internal/symbols"
	"lilc/internal/testkit"
	"lilc/internal/unparse"
)

func TestCorpus(t *testing.T) {
	cases, err := testkit.LoadCorpus("testdata")
	be.Err(t, err, nil)
	be.True(t, len(cases) > 0)

	for _, c := range cases {
		t.Run(c.File+"/"+c.Name, func(t *testing.T) {
			res := driver.AnalyzeSource(context.Background(), "input.lc", []byte(c.Program), driver.Options{Annotate: true})
			be.Err(t, testkit.CheckSpanInvariants(res.Builder, res.FileID, res.File), nil)

			if want, ok := c.Assertions[testkit.FenceDiagnostics]; ok {
				got := diag.FormatGoldenDiagnostics(res.Bag.Items(), res.FileSet, false)
				be.Equal(t, got, want)
			}
			if want, ok := c.Assertions[testkit.FenceAnnotated]; ok {
				be.Equal(t, strings.TrimRight(string(res.Output), "\n"), want)
			}
			if want, ok := c.Assertions[testkit.FenceSymbols]; ok {
				var buf bytes.Buffer
				be.Err(t, symbols.Dump(&buf, res.Symbols.Table, res.FileSet), nil)
				be.Equal(t, strings.TrimRight(buf.String(), "\n"), want)
			}

			// OK is true exactly when the pass reported nothing
			be.Equal(t, res.NamesOK, countRange(res.Bag, 3000, 3100) == 0)
			be.Equal(t, res.TypesOK, countRange(res.Bag, 3100, 3200) == 0)
		})
	}
}

// TestCorpusIdempotence re-parses the plain unparse of every clean corpus
// program and analyzes it again; both runs must stay clean.
func TestCorpusIdempotence(t *testing.T) {
	cases, err := testkit.LoadCorpus("testdata")
	be.Err(t, err, nil)

	ctx := context.Background()
	for _, c := range cases {
		if c.Assertions[testkit.FenceDiagnostics] != "" || !c.Has(testkit.FenceDiagnostics) {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			first := driver.AnalyzeSource(ctx, "first.lc", []byte(c.Program), driver.Options{})
			be.Equal(t, first.Bag.Len(), 0)

			plain, err := unparse.Format(first.Builder, first.FileID, unparse.Options{})
			be.Err(t, err, nil)
			second := driver.AnalyzeSource(ctx, "second.lc", plain, driver.Options{})
			be.Equal(t, second.Bag.Len(), 0)
			be.Equal(t, string(second.Output), string(plain))
		})
	}
}

func countRange(bag *diag.Bag, lo, hi diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code >= lo && d.Code < hi {
			n++
		}
	}
	return n
}
