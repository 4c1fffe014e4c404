// Package report turns grouped cppcheck diagnostics into a JUnit test report
// and serialises it.
//
// One testcase is produced per source file and one result entry per
// diagnostic. A run without diagnostics still yields a single passing
// testcase so that CI consumers never mistake "nothing found" for "nothing ran".
//
// Build is pure apart from the values passed in Options; the caller supplies
// the timestamp and hostname.
package report
