package report

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/jstemmer/go-junit-report/v2/junit"

	"cppcheck-junit/internal/cppcheck"
)

var fixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func decodeSuite(t *testing.T, data []byte) junit.Testsuite {
	t.Helper()
	var suite junit.Testsuite
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&suite); err != nil {
		t.Fatalf("failed to parse JUnit XML: %v\n%s", err, data)
	}
	return suite
}

func TestWriteXML_Success(t *testing.T) {
	s := Build(cppcheck.NewGroups(), Options{Hostname: "ci-host", Timestamp: fixedTime})
	got, err := MarshalXML(s)
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="Cppcheck errors" timestamp="2024-01-15T10:30:00" hostname="ci-host" tests="1" failures="0" errors="0" time="0">
	<testcase name="Cppcheck success" classname="Cppcheck success" time="0"></testcase>
</testsuite>
`
	if string(got) != want {
		t.Fatalf("unexpected document:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestWriteXML_Layout(t *testing.T) {
	g := cppcheck.NewGroups()
	g.Add(cppcheck.Diagnostic{
		File:      "main.c",
		Severity:  cppcheck.SevError,
		ID:        "nullPointer",
		Message:   "Null pointer dereference",
		Locations: []cppcheck.Location{{File: "main.c", Line: 3, Column: 9}},
	})
	s := Build(g, Options{Hostname: "ci-host", Timestamp: fixedTime})

	got, err := MarshalXML(s)
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="Cppcheck errors" timestamp="2024-01-15T10:30:00" hostname="ci-host" tests="1" failures="0" errors="1" time="0">
	<testcase name="main.c" classname="Cppcheck error" time="0">
		<error type="error:nullPointer" message="Null pointer dereference"><![CDATA[main.c:3:9: Null pointer dereference]]></error>
	</testcase>
</testsuite>
`
	if string(got) != want {
		t.Fatalf("unexpected document:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestWriteXML_RoundTripBadCpp(t *testing.T) {
	const msg = "Variable 'a' is assigned a value that is never used."
	g := cppcheck.NewGroups()
	g.Add(cppcheck.Diagnostic{
		File:      "bad.cpp",
		Severity:  cppcheck.SevStyle,
		ID:        "unreadVariable",
		Message:   msg,
		Locations: []cppcheck.Location{{File: "bad.cpp", Line: 4, Column: 0}},
	})

	data, err := MarshalXML(Build(g, Options{Timestamp: fixedTime}))
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	suite := decodeSuite(t, data)

	if suite.Tests != 1 || suite.Errors != 1 || suite.Failures != 0 {
		t.Fatalf("tests/errors/failures = %d/%d/%d, want 1/1/0", suite.Tests, suite.Errors, suite.Failures)
	}
	if len(suite.Testcases) != 1 {
		t.Fatalf("got %d testcases, want 1", len(suite.Testcases))
	}
	tc := suite.Testcases[0]
	if tc.Name != "bad.cpp" || tc.Classname != DefaultErrorClassname {
		t.Fatalf("testcase = %q/%q", tc.Name, tc.Classname)
	}
	if tc.Error == nil {
		t.Fatalf("expected an <error> element")
	}
	if tc.Error.Message != msg {
		t.Fatalf("message = %q, want %q", tc.Error.Message, msg)
	}
	if tc.Error.Type != "style:unreadVariable" {
		t.Fatalf("type = %q", tc.Error.Type)
	}
	if want := "bad.cpp:4:0: " + msg; tc.Error.Data != want {
		t.Fatalf("body = %q, want %q", tc.Error.Data, want)
	}
}

func TestWriteXML_TwoFiles(t *testing.T) {
	g := cppcheck.NewGroups()
	g.Add(cppcheck.Diagnostic{File: "bad.cpp", ID: "a"})
	g.Add(cppcheck.Diagnostic{File: "bad2.cpp", ID: "a"})

	data, err := MarshalXML(Build(g, Options{}))
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	suite := decodeSuite(t, data)
	if suite.Tests != 2 || len(suite.Testcases) != 2 {
		t.Fatalf("tests = %d, testcases = %d, want 2", suite.Tests, len(suite.Testcases))
	}
	for i, name := range []string{"bad.cpp", "bad2.cpp"} {
		if suite.Testcases[i].Name != name || suite.Testcases[i].Error == nil {
			t.Fatalf("testcase %d = %+v", i, suite.Testcases[i])
		}
	}
}

func TestWriteXML_MultilineBodyAndFailureKind(t *testing.T) {
	g := cppcheck.NewGroups()
	g.Add(cppcheck.Diagnostic{
		File:     "a.c",
		Severity: cppcheck.SevWarning,
		ID:       "w",
		Message:  "m",
		Verbose:  "v ]]> tricky\x01",
		Locations: []cppcheck.Location{
			{File: "a.c", Line: 1, Column: 2, Info: "here"},
			{File: "b.h", Line: 3, Column: 4, Info: "there"},
		},
	})

	data, err := MarshalXML(Build(g, Options{Kind: KindFailure}))
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	if bytes.Contains(data, []byte("<error")) {
		t.Fatalf("failure mode must not emit <error> elements:\n%s", data)
	}
	suite := decodeSuite(t, data)
	if suite.Failures != 1 || suite.Errors != 0 {
		t.Fatalf("failures/errors = %d/%d, want 1/0", suite.Failures, suite.Errors)
	}
	f := suite.Testcases[0].Failure
	if f == nil {
		t.Fatalf("expected a <failure> element")
	}
	want := "v ]]> tricky\uFFFD\na.c:1:2: here\nb.h:3:4: there"
	if f.Data != want {
		t.Fatalf("body = %q, want %q", f.Data, want)
	}
}

func TestWriteXML_EveryDiagnosticIsAnElement(t *testing.T) {
	g := cppcheck.NewGroups()
	for range 3 {
		g.Add(cppcheck.Diagnostic{File: "same.cpp", ID: "dup"})
	}
	data, err := MarshalXML(Build(g, Options{}))
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	if n := strings.Count(string(data), "<error "); n != 3 {
		t.Fatalf("got %d <error> elements, want 3", n)
	}
	if !strings.Contains(string(data), `errors="3"`) {
		t.Fatalf("errors attribute should count elements:\n%s", data)
	}
}
