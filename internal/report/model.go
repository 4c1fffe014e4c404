package report

import "time"

// Kind selects the JUnit element used for diagnostics.
type Kind uint8

const (
	// KindError emits <error> elements and counts them in the suite's errors attribute.
	KindError Kind = iota
	// KindFailure emits <failure> elements and counts them in failures.
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindFailure:
		return "failure"
	}
	return "unknown"
}

// Result is one diagnostic rendered as a JUnit error or failure.
type Result struct {
	Type    string // "<severity>:<id>"
	Message string // short diagnostic message
	Text    string // element body
}

// Case is one JUnit testcase: a source file and its diagnostics.
type Case struct {
	Name      string
	Classname string
	Results   []Result
}

// Suite is the root of the report.
type Suite struct {
	Name      string
	Timestamp time.Time
	Hostname  string
	Kind      Kind
	Cases     []Case
}

// Tests returns the number of testcases.
func (s Suite) Tests() int {
	return len(s.Cases)
}

// Results returns the number of result entries across all testcases.
func (s Suite) Results() int {
	n := 0
	for i := range s.Cases {
		n += len(s.Cases[i].Results)
	}
	return n
}

// Errors is the value of the suite's errors attribute.
func (s Suite) Errors() int {
	if s.Kind == KindError {
		return s.Results()
	}
	return 0
}

// Failures is the value of the suite's failures attribute.
func (s Suite) Failures() int {
	if s.Kind == KindFailure {
		return s.Results()
	}
	return 0
}
