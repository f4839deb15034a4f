package testkit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fence languages understood in a corpus file.
const (
	FenceProgram     = "lil"         // the program under test
	FenceDiagnostics = "diagnostics" // golden diagnostics, one per line; empty means clean
	FenceAnnotated   = "annotated"   // expected annotated unparse output
	FenceSymbols     = "symbols"     // expected symbol table dump
)

var assertionFences = []string{FenceDiagnostics, FenceAnnotated, FenceSymbols}

// Case is one "Test: name" section of a corpus file.
type Case struct {
	Name       string
	File       string // corpus file the case came from
	Line       int    // line of the heading
	Program    string
	Assertions map[string]string // fence language -> content without trailing newlines
}

// Has reports whether the case asserts on fence.
func (c Case) Has(fence string) bool {
	_, ok := c.Assertions[fence]
	return ok
}

// ExtractCases parses a markdown corpus. Each case starts at a heading of
// the form "Test: name" and holds one lil fence plus at least one assertion
// fence. Fences without a language are free-form prose and ignored.
func ExtractCases(name string, markdown []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(markdown))

	var cases []Case
	var cur *Case
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Program == "" {
			return fmt.Errorf("%s:%d: test %q has no %s fence", name, cur.Line, cur.Name, FenceProgram)
		}
		if len(cur.Assertions) == 0 {
			return fmt.Errorf("%s:%d: test %q has no assertion fences", name, cur.Line, cur.Name)
		}
		cases = append(cases, *cur)
		return nil
	}

	err := mdast.Walk(doc, func(node mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *mdast.Heading:
			heading := nodeText(n, markdown)
			title, ok := strings.CutPrefix(heading, "Test: ")
			if !ok {
				return mdast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return mdast.WalkStop, err
			}
			cur = &Case{
				Name:       strings.TrimSpace(title),
				File:       name,
				Line:       lineOf(n, markdown),
				Assertions: make(map[string]string),
			}
		case *mdast.FencedCodeBlock:
			lang := string(n.Language(markdown))
			if lang == "" {
				return mdast.WalkContinue, nil
			}
			line := lineOf(n, markdown)
			if cur == nil {
				return mdast.WalkStop, fmt.Errorf("%s:%d: %s fence outside of a test", name, line, lang)
			}
			content := strings.TrimRight(fenceContent(n, markdown), "\n")
			switch {
			case lang == FenceProgram:
				if cur.Program != "" {
					return mdast.WalkStop, fmt.Errorf("%s:%d: test %q has two %s fences", name, line, cur.Name, FenceProgram)
				}
				cur.Program = content + "\n"
			case slices.Contains(assertionFences, lang):
				if cur.Has(lang) {
					return mdast.WalkStop, fmt.Errorf("%s:%d: test %q repeats the %s fence", name, line, cur.Name, lang)
				}
				cur.Assertions[lang] = content
			default:
				return mdast.WalkStop, fmt.Errorf("%s:%d: unknown fence %q in test %q", name, line, lang, cur.Name)
			}
		}
		return mdast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

// LoadCorpus reads every *.md file in dir, in name order.
func LoadCorpus(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	var all []Case
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		cases, err := ExtractCases(filepath.Base(p), data)
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}
	return all, nil
}

func nodeText(node mdast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = mdast.Walk(node, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if t, ok := n.(*mdast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return mdast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *mdast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// lineOf is the 1-based line of node's first content line.
func lineOf(node mdast.Node, src []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(src[:min(start, len(src))], []byte{'\n'}) + 1
}
