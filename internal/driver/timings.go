package driver

import (
	"encoding/json"
	"fmt"

	"lilc/internal/diag"
	"lilc/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Slowest string               `json:"slowest,omitempty"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func fileTimings(path string, report observ.Report) timingPayload {
	payload := timingPayload{
		Kind:    "file",
		Path:    path,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	}
	var top float64
	for _, p := range report.Phases {
		if p.DurationMS >= top {
			top, payload.Slowest = p.DurationMS, p.Name
		}
	}
	return payload
}

func (p timingPayload) message() string {
	msg := fmt.Sprintf("%s timings: %.2f ms total", p.Kind, p.TotalMS)
	if p.Slowest != "" {
		msg += ", slowest phase " + p.Slowest
	}
	if p.Path != "" {
		msg += " (" + p.Path + ")"
	}
	return msg
}

// appendTimingDiagnostic adds an ObsTimings info entry whose note is the
// JSON phase report. A full bag is widened so the entry always lands.
func appendTimingDiagnostic(bag *diag.Bag, payload timingPayload) {
	if bag == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	entry := &diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  payload.message(),
		Notes:    []diag.Note{{Msg: string(data)}},
	}
	// через Merge, чтобы запись не считалась отброшенной лимитом
	extra := diag.NewBag(0)
	extra.Add(entry)
	bag.Merge(extra)
}
