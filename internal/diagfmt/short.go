package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cppcheck-junit/internal/cppcheck"
)

// Short writes one line per diagnostic in report order:
//
//	<severity> <id> <file>:<line>:<column> <message>
//
// With IncludeNotes every location carrying info adds a "note" line.
func Short(w io.Writer, res *cppcheck.Result, opts ShortOpts) error {
	for _, diags := range res.Groups.All() {
		for _, d := range diags {
			if _, err := fmt.Fprintf(w, "%s %s %s %s\n", d.Severity, d.ID, primaryPosition(d), sanitizeMessage(d.Message)); err != nil {
				return err
			}
			if !opts.IncludeNotes {
				continue
			}
			for _, loc := range d.Locations {
				if loc.Info == "" {
					continue
				}
				if _, err := fmt.Fprintf(w, "note %s %s %s\n", d.ID, loc, sanitizeMessage(loc.Info)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// primaryPosition is the first location, or the resolved file when cppcheck
// gave none.
func primaryPosition(d cppcheck.Diagnostic) string {
	if len(d.Locations) > 0 {
		return d.Locations[0].String()
	}
	return cppcheck.Location{File: d.File}.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
