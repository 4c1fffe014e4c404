package diagfmt

import (
	"fmt"
	"strings"
)

// Format selects how parsed diagnostics are rendered by inspect.
type Format uint8

const (
	// FormatPretty is the aligned, optionally colored, per-file listing.
	FormatPretty Format = iota
	// FormatShort prints one line per diagnostic.
	FormatShort
	FormatJSON
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatShort:
		return "short"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// Binary reports whether the format must not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatMsgpack
}

// ParseFormat maps a --format value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "short":
		return FormatShort, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return 0, fmt.Errorf("unknown format %q (must be pretty, short, json or msgpack)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Width     int // максимальная ширина сообщения, 0 - не ограничено
	ShowNotes bool
}

// ShortOpts configures the one-line-per-diagnostic output.
type ShortOpts struct {
	IncludeNotes bool
}
