package driver

import (
	"time"

	"lilc/internal/observ"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a pipeline phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a pipeline phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during AnalyzeFile.
type PhaseObserver func(PhaseEvent)

// phases couples the optional timer with the optional observer.
type phases struct {
	timer    *observ.Timer
	observer PhaseObserver
}

type phaseHandle struct {
	name  string
	idx   int
	start time.Time
}

func (p phases) begin(name string) phaseHandle {
	h := phaseHandle{name: name, idx: p.timer.Begin(name), start: time.Now()}
	if p.observer != nil {
		p.observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
	return h
}

func (p phases) end(h phaseHandle, note string) {
	p.timer.End(h.idx, note)
	if p.observer != nil {
		p.observer(PhaseEvent{Name: h.name, Status: PhaseEnd, Elapsed: time.Since(h.start)})
	}
}
