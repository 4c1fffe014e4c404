package cppcheck

import "fmt"

// SupportedVersion is the only Cppcheck XML format version Parse accepts.
const SupportedVersion = 2

// NotFoundError reports that the input could not be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read cppcheck report %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedError reports input that is not well-formed XML.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed XML: %v", displayPath(e.Path), e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// VersionError reports a missing, non-numeric or unsupported format version.
// Value holds the raw attribute; Present is false when the attribute is absent.
type VersionError struct {
	Path    string
	Value   string
	Present bool
	Err     error
}

func (e *VersionError) Error() string {
	switch {
	case !e.Present:
		return fmt.Sprintf("%s: missing results version, parser only supports Cppcheck XML version %d (use --xml-version=%d)",
			displayPath(e.Path), SupportedVersion, SupportedVersion)
	case e.Err != nil:
		return fmt.Sprintf("%s: invalid results version %q, parser only supports Cppcheck XML version %d (use --xml-version=%d)",
			displayPath(e.Path), e.Value, SupportedVersion, SupportedVersion)
	default:
		return fmt.Sprintf("%s: unsupported results version %s, parser only supports Cppcheck XML version %d (use --xml-version=%d)",
			displayPath(e.Path), e.Value, SupportedVersion, SupportedVersion)
	}
}

func (e *VersionError) Unwrap() error { return e.Err }

func displayPath(path string) string {
	if path == "" {
		return "<input>"
	}
	return path
}
