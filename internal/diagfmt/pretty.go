package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"cppcheck-junit/internal/cppcheck"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой группы печатается заголовок "== <file> (<n>) ==", затем по
// строке на диагностику:
//
//	<file>:<line>:<col>  <severity>  <id>  <message>
//
// Колонки выравниваются по ширине внутри группы. С ShowNotes под
// диагностикой печатаются все локации с info.
func Pretty(w io.Writer, res *cppcheck.Result, opts PrettyOpts) error {
	p := newPalette(opts.Color)

	if res.Groups.Total() == 0 {
		_, err := fmt.Fprintln(w, p.ok.Sprint("no diagnostics"))
		return err
	}

	first := true
	for file, diags := range res.Groups.All() {
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		title := file
		if title == "" {
			title = "<no file>"
		}
		if _, err := fmt.Fprintln(w, p.header.Sprintf("== %s (%d) ==", title, len(diags))); err != nil {
			return err
		}

		rows := make([]prettyRow, len(diags))
		var posW, sevW, idW int
		for i, d := range diags {
			rows[i] = prettyRow{
				pos: norm.NFC.String(primaryPosition(d)),
				sev: d.Severity.String(),
				id:  d.ID,
				msg: norm.NFC.String(sanitizeMessage(d.Message)),
			}
			posW = max(posW, runewidth.StringWidth(rows[i].pos))
			sevW = max(sevW, runewidth.StringWidth(rows[i].sev))
			idW = max(idW, runewidth.StringWidth(rows[i].id))
		}

		for i, d := range diags {
			row := rows[i]
			msg := row.msg
			if opts.Width > 0 {
				msg = runewidth.Truncate(msg, opts.Width, "…")
			}
			if d.Inconclusive {
				msg += p.note.Sprint(" (inconclusive)")
			}
			if _, err := fmt.Fprintf(w, "  %s  %s  %s  %s\n",
				p.pos.Sprint(runewidth.FillRight(row.pos, posW)),
				p.severity(d.Severity).Sprint(runewidth.FillRight(row.sev, sevW)),
				p.id.Sprint(runewidth.FillRight(row.id, idW)),
				msg,
			); err != nil {
				return err
			}
			if !opts.ShowNotes {
				continue
			}
			for _, loc := range d.Locations {
				if loc.Info == "" {
					continue
				}
				if _, err := fmt.Fprintf(w, "      %s %s %s\n",
					p.note.Sprint("note:"),
					p.pos.Sprint(loc.String()),
					norm.NFC.String(sanitizeMessage(loc.Info)),
				); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type prettyRow struct {
	pos, sev, id, msg string
}

// palette holds per-call color objects so that the global color.NoColor
// switch is never touched.
type palette struct {
	header, pos, id, note, ok *color.Color
	err, warn, style, info    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		pos:    color.New(color.FgCyan),
		id:     color.New(color.Faint),
		note:   color.New(color.FgBlue),
		ok:     color.New(color.FgGreen),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
		style:  color.New(color.FgMagenta),
		info:   color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{p.header, p.pos, p.id, p.note, p.ok, p.err, p.warn, p.style, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s cppcheck.Severity) *color.Color {
	switch s.Rank() {
	case 4:
		return p.err
	case 3:
		return p.warn
	case 2:
		return p.style
	}
	return p.info
}
