package report

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// TimestampLayout is ISO 8601 without zone, as expected by the JUnit schema.
const TimestampLayout = "2006-01-02T15:04:05"

// cppcheck does not report durations.
const zeroDuration = "0"

type suiteXML struct {
	XMLName   xml.Name  `xml:"testsuite"`
	Name      string    `xml:"name,attr"`
	Timestamp string    `xml:"timestamp,attr"`
	Hostname  string    `xml:"hostname,attr"`
	Tests     int       `xml:"tests,attr"`
	Failures  int       `xml:"failures,attr"`
	Errors    int       `xml:"errors,attr"`
	Time      string    `xml:"time,attr"`
	Cases     []caseXML `xml:"testcase"`
}

type caseXML struct {
	Name      string      `xml:"name,attr"`
	Classname string      `xml:"classname,attr"`
	Time      string      `xml:"time,attr"`
	Errors    []resultXML `xml:"error,omitempty"`
	Failures  []resultXML `xml:"failure,omitempty"`
}

type resultXML struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Text    string `xml:",cdata"`
}

func toXML(s Suite) suiteXML {
	out := suiteXML{
		Name:     s.Name,
		Hostname: s.Hostname,
		Tests:    s.Tests(),
		Failures: s.Failures(),
		Errors:   s.Errors(),
		Time:     zeroDuration,
		Cases:    make([]caseXML, len(s.Cases)),
	}
	if !s.Timestamp.IsZero() {
		out.Timestamp = s.Timestamp.Format(TimestampLayout)
	}

	for i, c := range s.Cases {
		cx := caseXML{
			Name:      c.Name,
			Classname: c.Classname,
			Time:      zeroDuration,
		}
		if len(c.Results) > 0 {
			results := make([]resultXML, len(c.Results))
			for j, r := range c.Results {
				results[j] = resultXML{
					Type:    r.Type,
					Message: r.Message,
					Text:    escapeIllegalChars(r.Text),
				}
			}
			if s.Kind == KindFailure {
				cx.Failures = results
			} else {
				cx.Errors = results
			}
		}
		out.Cases[i] = cx
	}
	return out
}

// WriteXML writes s as a UTF-8 JUnit document with an XML declaration.
func WriteXML(w io.Writer, s Suite) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(toXML(s)); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// MarshalXML is WriteXML into a byte slice.
func MarshalXML(s Suite) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CDATA sections are not escaped by the encoder, so characters outside the
// XML Char production are replaced here.
func escapeIllegalChars(s string) string {
	return strings.Map(func(r rune) rune {
		if isInCharacterRange(r) {
			return r
		}
		return '\uFFFD'
	}, s)
}

func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
