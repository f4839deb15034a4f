package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin(PhaseLoad)
	tm.End(load, "")
	parse := tm.Begin(PhaseParse)
	tm.End(parse, "decls=3")
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[1].Name != PhaseParse || rep.Phases[1].Note != "decls=3" {
		t.Errorf("parse phase = %+v", rep.Phases[1])
	}
	if rep.TotalMS < rep.Phases[0].DurationMS {
		t.Errorf("total %.3f below a phase %.3f", rep.TotalMS, rep.Phases[0].DurationMS)
	}
	if !strings.Contains(tm.Summary(), "// decls=3") {
		t.Errorf("summary lacks note:\n%s", tm.Summary())
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin(PhaseTypes)
	tm.End(idx, "x")
	if idx != -1 || len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must record nothing")
	}
}
