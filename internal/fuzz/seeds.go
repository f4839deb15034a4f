package fuzztests

import (
	"path/filepath"
	"testing"

	"lilc/internal/testkit"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"int x;\n",
	"struct S { int a; bool b; };\nstruct S s;\nvoid f() { s.a = 1; s.b = !s.b; }\n",
	"int f(int a, bool b) { if (b) { return a; } else { return -a; } }\n",
	"void main() { int i; while (i < 10) { i++; cout << i * 2; } cin >> i; }\n",
	"void f() { cout << \"str\\n\"; }\n",
	"void f() { a = b = c = 1; }\n",
	"int x; int x; void x() { y; }\n",
	"void f() { { { } } }\n",
	"struct { int; };\n",
	"void f( { return",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	// программы из markdown-корпуса семантических тестов
	cases, err := testkit.LoadCorpus(filepath.Join("..", "sema", "testdata"))
	if err != nil {
		return
	}
	for _, c := range cases {
		f.Add(clampSeed([]byte(c.Program)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
