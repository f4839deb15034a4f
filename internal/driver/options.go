package driver

import (
	"fmt"
	"strings"
)

// Stage определяет, после какой фазы остановиться
type Stage string

const (
	StageSyntax Stage = "syntax"
	StageNames  Stage = "names"
	StageTypes  Stage = "types"
)

// ParseStage accepts syntax|names|types; the empty string means types.
func ParseStage(s string) (Stage, error) {
	switch st := Stage(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StageTypes, nil
	case StageSyntax, StageNames, StageTypes:
		return st, nil
	default:
		return "", fmt.Errorf("unknown stage %q (want syntax|names|types)", s)
	}
}

func (s Stage) orDefault() Stage {
	if s == "" {
		return StageTypes
	}
	return s
}

func (s Stage) runsNames() bool { return s == StageNames || s == StageTypes || s == "" }
func (s Stage) runsTypes() bool { return s == StageTypes || s == "" }

// Options содержит опции анализа одного файла
type Options struct {
	Stage          Stage
	MaxDiagnostics int
	// Annotate prints resolved type labels into Result.Output.
	Annotate      bool
	IndentWidth   int
	EnableTimings bool
	// Cache, when set, is consulted before analysis and filled after it.
	Cache    *DiskCache
	Observer PhaseObserver
}

// fingerprint covers every option that changes the outcome of an analysis.
func (o Options) fingerprint() string {
	return fmt.Sprintf("v%d|%s|%d|%t|%d", diskCacheSchemaVersion, o.Stage.orDefault(), o.MaxDiagnostics, o.Annotate, o.IndentWidth)
}
