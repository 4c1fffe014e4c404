// Package cppcheck reads Cppcheck XML version 2 reports into an in-memory
// diagnostic model.
//
// # Input
//
// Cppcheck writes its XML report to stderr when invoked with --xml:
//
//	<results version="2">
//	  <cppcheck version="2.13.0"/>
//	  <errors>
//	    <error id="unreadVariable" severity="style" msg="..." verbose="..." cwe="563" file0="a.cpp">
//	      <location file="a.cpp" line="4" column="7" info="..."/>
//	    </error>
//	  </errors>
//	</results>
//
// Only version 2 is understood. The <errors> section is optional: a report
// without it is equivalent to a report with zero diagnostics.
//
// # Data model
//
// Diagnostic is one reported issue. It keeps the attributes of the <error>
// element verbatim (missing attributes become zero values) and the ordered
// list of nested locations. Diagnostic.File is resolved once at parse time:
//
//   - the explicit file0 (or file) attribute of the <error> element, if any;
//   - otherwise the file of the first location;
//   - otherwise the empty string.
//
// Groups collects diagnostics keyed by their resolved file. Keys keep the order
// in which they were first seen and every group keeps source order, so the
// report built from it is deterministic without any sorting.
//
// # Errors
//
// Parse distinguishes three terminal failures, each matchable with errors.As:
//
//   - NotFoundError – the input path could not be opened.
//   - MalformedError – the input is not well-formed XML.
//   - VersionError – the root version attribute is missing, not an integer,
//     or not 2.
//
// Attribute absence inside a diagnostic is never an error.
package cppcheck
