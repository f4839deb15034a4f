package ui

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"lilc/internal/driver"
	"lilc/internal/observ"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	m := NewProgressModel("lilc diag", []string{"a.lc", "b.lc"}, events).(*progressModel)

	m.applyEvent(driver.ProgressEvent{File: "a.lc", Phase: observ.PhaseNames, Status: driver.StatusWorking})
	be.Equal(t, m.items[0].status, "resolving")
	be.Equal(t, m.percent(), 0.25)

	m.applyEvent(driver.ProgressEvent{File: "a.lc", Status: driver.StatusDone})
	m.applyEvent(driver.ProgressEvent{File: "b.lc", Status: driver.StatusError})
	be.Equal(t, m.percent(), 1.0)

	finished, failed := m.counts()
	be.Equal(t, finished, 2)
	be.Equal(t, failed, 1)

	// неизвестный файл игнорируется
	be.True(t, m.applyEvent(driver.ProgressEvent{File: "c.lc", Status: driver.StatusDone}) == nil)
}

func TestProgressModelView(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	m := NewProgressModel("lilc diag", []string{"a.lc"}, events).(*progressModel)
	m.applyEvent(driver.ProgressEvent{File: "a.lc", Status: driver.StatusError})

	_, cmd := m.Update(doneMsg{})
	be.True(t, cmd != nil)
	view := m.View()
	be.True(t, strings.Contains(view, "done: lilc diag [1/1], 1 with errors"))
	be.True(t, strings.Contains(view, "error a.lc"))
}

func TestTruncate(t *testing.T) {
	be.Equal(t, truncate("short.lc", 20), "short.lc")
	be.Equal(t, truncate("a/very/long/path/name.lc", 10), "a/ve...")
	be.Equal(t, truncate("日本語.lc", 3), "日")
}
