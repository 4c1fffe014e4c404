package diagfmt

import "cppcheck-junit/internal/cppcheck"

func sampleResult() *cppcheck.Result {
	g := cppcheck.NewGroups()
	g.Add(cppcheck.Diagnostic{
		File:     "bad.cpp",
		Message:  "Null pointer dereference",
		Severity: cppcheck.SevError,
		ID:       "nullPointer",
		CWE:      476,
		Locations: []cppcheck.Location{
			{File: "bad.cpp", Line: 4, Column: 3, Info: "Null pointer dereference"},
			{File: "bad.cpp", Line: 3, Column: 10, Info: "Assignment 'p=0'"},
		},
	})
	g.Add(cppcheck.Diagnostic{
		File:         "other.cpp",
		Message:      "Variable 'x' is\nnot used",
		Severity:     cppcheck.SevStyle,
		ID:           "unusedVariable",
		Inconclusive: true,
		Locations:    []cppcheck.Location{{File: "other.cpp", Line: 12, Column: 7}},
	})
	g.Add(cppcheck.Diagnostic{
		Message:  "Too many #ifdef configurations",
		Severity: cppcheck.SevInformation,
		ID:       "toomanyconfigs",
	})
	return &cppcheck.Result{Groups: g, CppcheckVersion: "2.13.0"}
}

func emptyResult() *cppcheck.Result {
	return &cppcheck.Result{Groups: cppcheck.NewGroups()}
}
