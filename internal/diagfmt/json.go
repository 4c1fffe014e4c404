package diagfmt

import (
	"encoding/json"
	"io"

	"cppcheck-junit/internal/cppcheck"
)

// dumpSchemaVersion is bumped whenever DiagnosticsOutput changes shape.
const dumpSchemaVersion uint16 = 1

// LocationJSON is one location of a diagnostic.
type LocationJSON struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Info   string `json:"info,omitempty"`
}

// DiagnosticJSON is a diagnostic as exported by inspect.
type DiagnosticJSON struct {
	ID           string         `json:"id"`
	Severity     string         `json:"severity"`
	Message      string         `json:"message"`
	Verbose      string         `json:"verbose,omitempty"`
	CWE          uint32         `json:"cwe,omitempty"`
	Inconclusive bool           `json:"inconclusive,omitempty"`
	Locations    []LocationJSON `json:"locations,omitempty"`
}

// FileJSON is one group of diagnostics.
type FileJSON struct {
	File        string           `json:"file"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// DiagnosticsOutput is the root of the json and msgpack exports. Files keep
// report order.
type DiagnosticsOutput struct {
	Schema          uint16     `json:"schema"`
	CppcheckVersion string     `json:"cppcheck_version,omitempty"`
	Files           []FileJSON `json:"files"`
	Count           int        `json:"count"`
}

// BuildDiagnosticsOutput converts a parse result without serialising it.
func BuildDiagnosticsOutput(res *cppcheck.Result) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Schema:          dumpSchemaVersion,
		CppcheckVersion: res.CppcheckVersion,
		Files:           make([]FileJSON, 0, res.Groups.Len()),
		Count:           res.Groups.Total(),
	}
	for file, diags := range res.Groups.All() {
		group := FileJSON{File: file, Diagnostics: make([]DiagnosticJSON, len(diags))}
		for i, d := range diags {
			dj := DiagnosticJSON{
				ID:           d.ID,
				Severity:     string(d.Severity),
				Message:      d.Message,
				Verbose:      d.Verbose,
				CWE:          d.CWE,
				Inconclusive: d.Inconclusive,
			}
			if len(d.Locations) > 0 {
				dj.Locations = make([]LocationJSON, len(d.Locations))
				for j, loc := range d.Locations {
					dj.Locations[j] = LocationJSON(loc)
				}
			}
			group.Diagnostics[i] = dj
		}
		out.Files = append(out.Files, group)
	}
	return out
}

// JSON writes the parse result as indented JSON.
func JSON(w io.Writer, res *cppcheck.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(res))
}
