package cppcheck

// Severity is the cppcheck severity category of a diagnostic. Values are kept
// verbatim from the report, so unknown categories survive a round trip.
type Severity string

const (
	SevError       Severity = "error"
	SevWarning     Severity = "warning"
	SevStyle       Severity = "style"
	SevPerformance Severity = "performance"
	SevPortability Severity = "portability"
	SevInformation Severity = "information"
	SevDebug       Severity = "debug"
)

// Rank orders severities from least to most important. Unknown severities rank
// with debug.
func (s Severity) Rank() int {
	switch s {
	case SevError:
		return 4
	case SevWarning:
		return 3
	case SevStyle, SevPerformance, SevPortability:
		return 2
	case SevInformation:
		return 1
	}
	return 0
}

func (s Severity) String() string {
	if s == "" {
		return "none"
	}
	return string(s)
}
