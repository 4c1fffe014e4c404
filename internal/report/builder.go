package report

import (
	"fmt"
	"strings"
	"time"

	"cppcheck-junit/internal/cppcheck"
)

const (
	DefaultSuiteName        = "Cppcheck errors"
	DefaultSuccessName      = "Cppcheck success"
	DefaultUnnamedCaseName  = "Cppcheck"
	DefaultErrorClassname   = "Cppcheck error"
	DefaultSuccessClassname = "Cppcheck success"
)

// Options configures Build. Empty names fall back to the Default* constants.
type Options struct {
	SuiteName        string
	SuccessName      string
	SuccessClassname string
	UnnamedCaseName  string
	ErrorClassname   string
	Kind             Kind
	Hostname         string
	Timestamp        time.Time
}

func (o Options) withDefaults() Options {
	if o.SuiteName == "" {
		o.SuiteName = DefaultSuiteName
	}
	if o.SuccessName == "" {
		o.SuccessName = DefaultSuccessName
	}
	if o.SuccessClassname == "" {
		o.SuccessClassname = DefaultSuccessClassname
	}
	if o.UnnamedCaseName == "" {
		o.UnnamedCaseName = DefaultUnnamedCaseName
	}
	if o.ErrorClassname == "" {
		o.ErrorClassname = DefaultErrorClassname
	}
	return o
}

// Build maps grouped diagnostics onto a Suite. It never fails.
func Build(groups *cppcheck.Groups, opts Options) Suite {
	opts = opts.withDefaults()
	suite := Suite{
		Name:      opts.SuiteName,
		Timestamp: opts.Timestamp,
		Hostname:  opts.Hostname,
		Kind:      opts.Kind,
	}

	if groups.Len() == 0 {
		suite.Cases = []Case{{Name: opts.SuccessName, Classname: opts.SuccessClassname}}
		return suite
	}

	suite.Cases = make([]Case, 0, groups.Len())
	for file, diags := range groups.All() {
		suite.Cases = append(suite.Cases, NewCase(file, opts.ErrorClassname, opts.UnnamedCaseName, diags))
	}
	return suite
}

// NewCase builds the testcase of one file. An empty file name is replaced by
// unnamed.
func NewCase(file, classname, unnamed string, diags []cppcheck.Diagnostic) Case {
	name := file
	if name == "" {
		name = unnamed
	}
	c := Case{Name: name, Classname: classname}
	if len(diags) > 0 {
		c.Results = make([]Result, len(diags))
		for i := range diags {
			c.Results[i] = NewResult(diags[i])
		}
	}
	return c
}

// NewResult renders a single diagnostic.
func NewResult(d cppcheck.Diagnostic) Result {
	return Result{
		Type:    d.Type(),
		Message: d.Message,
		Text:    FormatText(d),
	}
}

// FormatText renders the body of a result:
//
//   - no location: the verbose text as is;
//   - one location without info: "file:line:column: verbose";
//   - otherwise the verbose text followed by one "file:line:column: info"
//     line per location.
func FormatText(d cppcheck.Diagnostic) string {
	verbose := d.EffectiveVerbose()
	switch {
	case len(d.Locations) == 0:
		return verbose
	case len(d.Locations) == 1 && d.Locations[0].Info == "":
		return fmt.Sprintf("%s: %s", d.Locations[0], verbose)
	}

	var b strings.Builder
	b.WriteString(verbose)
	for _, loc := range d.Locations {
		fmt.Fprintf(&b, "\n%s: %s", loc, loc.Info)
	}
	return b.String()
}
