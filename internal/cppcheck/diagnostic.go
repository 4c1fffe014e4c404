package cppcheck

import "fmt"

// Location is one source position attributed to a diagnostic.
type Location struct {
	File   string
	Line   uint32 // 1-based, 0 = unknown
	Column uint32 // 1-based, 0 = unknown
	Info   string // role of this location in a multi-location diagnostic
}

// String renders the location as file:line:column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single finding reported by cppcheck.
type Diagnostic struct {
	File         string
	Locations    []Location
	Message      string
	Severity     Severity
	ID           string
	Verbose      string
	CWE          uint32 // 0 when cppcheck did not map the check to a CWE
	Inconclusive bool
}

// EffectiveVerbose returns the verbose text, falling back to the short message.
func (d Diagnostic) EffectiveVerbose() string {
	if d.Verbose != "" {
		return d.Verbose
	}
	return d.Message
}

// Type is the "<severity>:<id>" classification used by report consumers.
func (d Diagnostic) Type() string {
	return string(d.Severity) + ":" + d.ID
}
