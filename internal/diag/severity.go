package diag

// Severity defines the importance of a diagnostic.
// Ordering matters: Bag.HasErrors and quiet output compare with SevError.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]struct{ upper, lower string }{
	SevInfo:    {"INFO", "info"},
	SevWarning: {"WARNING", "warning"},
	SevError:   {"ERROR", "error"},
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s].upper
	}
	return "UNKNOWN"
}

// Lower is the label used by golden files; unknown values read as info.
func (s Severity) Lower() string {
	if int(s) < len(severityNames) {
		return severityNames[s].lower
	}
	return "info"
}

func (s Severity) IsError() bool { return s >= SevError }
