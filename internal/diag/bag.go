package diag

import "sort"

// Bag is a bounded, ordered collection of diagnostics.
type Bag struct {
	items []*Diagnostic
	max   int

	// что не влезло в лимит: всего и из них ошибок
	dropped       int
	droppedErrors int
}

// NewBag creates a bag that keeps at most limit diagnostics; limit <= 0 means unbounded.
func NewBag(limit int) *Bag {
	return &Bag{
		items: make([]*Diagnostic, 0, min(max(limit, 0), 64)),
		max:   limit,
	}
}

// Add appends d unless the limit is reached.
// Returns false when the diagnostic was dropped; dropped entries still
// count towards Dropped and HasErrors.
func (b *Bag) Add(d *Diagnostic) bool {
	if d == nil {
		return false
	}
	if b.max > 0 && len(b.items) >= b.max {
		b.NoteDropped(1, btoi(d.Severity.IsError()))
		return false
	}
	b.items = append(b.items, d)
	return true
}

// NoteDropped records diagnostics that were reported but not kept.
func (b *Bag) NoteDropped(total, errors int) {
	b.dropped += total
	b.droppedErrors += errors
}

// Dropped returns how many diagnostics the limit discarded, and how many of
// those were errors.
func (b *Bag) Dropped() (total, errors int) {
	return b.dropped, b.droppedErrors
}

func btoi(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors reports whether any diagnostic, kept or dropped, has Severity >= Error.
func (b *Bag) HasErrors() bool {
	if b.droppedErrors > 0 {
		return true
	}
	for _, d := range b.items {
		if d.Severity.IsError() {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the internal slice; callers must not modify it.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge appends everything from other, growing the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); b.max > 0 && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
	b.NoteDropped(other.dropped, other.droppedErrors)
}

// Sort orders diagnostics by file, start, end, severity (desc) and code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Filter keeps diagnostics for which keep returns true.
func (b *Bag) Filter(keep func(*Diagnostic) bool) {
	out := b.items[:0]
	for _, d := range b.items {
		if keep(d) {
			out = append(out, d)
		}
	}
	b.items = out
}
