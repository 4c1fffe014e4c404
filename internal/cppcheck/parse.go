package cppcheck

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/encoding/ianaindex"
)

const rootElement = "results"

// Result is a parsed Cppcheck report.
type Result struct {
	Groups *Groups
	// CppcheckVersion is the version of the cppcheck binary that produced the
	// report, empty when the <cppcheck> element is missing.
	CppcheckVersion string
}

type resultsXML struct {
	XMLName xml.Name
	Version *string    `xml:"version,attr"`
	Tool    *toolXML   `xml:"cppcheck"`
	Errors  *errorsXML `xml:"errors"`
}

type toolXML struct {
	Version string `xml:"version,attr"`
}

type errorsXML struct {
	Errors []errorXML `xml:"error"`
}

type errorXML struct {
	ID           string        `xml:"id,attr"`
	Severity     string        `xml:"severity,attr"`
	Msg          string        `xml:"msg,attr"`
	Verbose      string        `xml:"verbose,attr"`
	CWE          string        `xml:"cwe,attr"`
	Inconclusive string        `xml:"inconclusive,attr"`
	File0        string        `xml:"file0,attr"`
	File         string        `xml:"file,attr"`
	Locations    []locationXML `xml:"location"`
}

type locationXML struct {
	File   string `xml:"file,attr"`
	Line   string `xml:"line,attr"`
	Column string `xml:"column,attr"`
	Info   string `xml:"info,attr"`
}

// ParseFile opens path and parses it as a Cppcheck XML version 2 report.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if st.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}

	return parse(f, path)
}

// Parse reads a Cppcheck XML version 2 report from r.
func Parse(r io.Reader) (*Result, error) {
	return parse(r, "")
}

func parse(r io.Reader, path string) (*Result, error) {
	src := &readTracker{r: r}
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charsetReader

	var doc resultsXML
	if err := dec.Decode(&doc); err != nil {
		return nil, classifyDecodeError(src, path, err)
	}
	if err := drainTrailer(dec, src, path); err != nil {
		return nil, err
	}
	if doc.XMLName.Local != rootElement {
		return nil, &MalformedError{Path: path, Err: fmt.Errorf("root element is <%s>, want <%s>", doc.XMLName.Local, rootElement)}
	}

	if err := checkVersion(doc.Version, path); err != nil {
		return nil, err
	}

	res := &Result{Groups: NewGroups()}
	if doc.Tool != nil {
		res.CppcheckVersion = doc.Tool.Version
	}
	if doc.Errors == nil {
		return res, nil
	}
	for i := range doc.Errors.Errors {
		res.Groups.Add(doc.Errors.Errors[i].diagnostic())
	}
	return res, nil
}

// drainTrailer consumes everything after the root element. Only comments,
// processing instructions, directives and whitespace may follow it; the
// decoder itself does not enforce a single root.
func drainTrailer(dec *xml.Decoder, src *readTracker, path string) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return classifyDecodeError(src, path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return &MalformedError{Path: path, Err: errors.New("content after root element")}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return &MalformedError{Path: path, Err: errors.New("content after root element")}
			}
		}
	}
}

func checkVersion(raw *string, path string) error {
	if raw == nil {
		return &VersionError{Path: path}
	}
	v, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return &VersionError{Path: path, Value: *raw, Present: true, Err: err}
	}
	if v != SupportedVersion {
		return &VersionError{Path: path, Value: *raw, Present: true}
	}
	return nil
}

func (e *errorXML) diagnostic() Diagnostic {
	d := Diagnostic{
		Message:      e.Msg,
		Severity:     Severity(e.Severity),
		ID:           e.ID,
		Verbose:      e.Verbose,
		CWE:          parseUint32(e.CWE),
		Inconclusive: parseBool(e.Inconclusive),
	}
	if len(e.Locations) > 0 {
		d.Locations = make([]Location, len(e.Locations))
		for i, loc := range e.Locations {
			d.Locations[i] = Location{
				File:   loc.File,
				Line:   parseUint32(loc.Line),
				Column: parseUint32(loc.Column),
				Info:   loc.Info,
			}
		}
	}

	d.File = e.File0
	if d.File == "" {
		d.File = e.File
	}
	if d.File == "" && len(d.Locations) > 0 {
		d.File = d.Locations[0].File
	}
	return d
}

// parseUint32 returns 0 for absent, negative, overflowing or non-numeric values.
func parseUint32(s string) uint32 {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func classifyDecodeError(src *readTracker, path string, err error) error {
	if src.err != nil {
		return &NotFoundError{Path: path, Err: src.err}
	}
	if errors.Is(err, io.EOF) {
		err = errors.New("empty document")
	}
	return &MalformedError{Path: path, Err: err}
}

// charsetReader lets non UTF-8 reports (e.g. produced on Windows with a
// legacy code page declared in the prolog) through the decoder.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// readTracker remembers the first non-EOF read failure so that I/O errors are
// not reported as malformed XML.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}
