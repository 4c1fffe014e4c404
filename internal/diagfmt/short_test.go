package diagfmt

import (
	"bytes"
	"testing"
)

// TestShort проверяет формат "severity id file:line:col message".
func TestShort(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, sampleResult(), ShortOpts{}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "error nullPointer bad.cpp:4:3 Null pointer dereference\n" +
		"style unusedVariable other.cpp:12:7 Variable 'x' is not used\n" +
		"information toomanyconfigs :0:0 Too many #ifdef configurations\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestShortWithNotes(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, sampleResult(), ShortOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "error nullPointer bad.cpp:4:3 Null pointer dereference\n" +
		"note nullPointer bad.cpp:4:3 Null pointer dereference\n" +
		"note nullPointer bad.cpp:3:10 Assignment 'p=0'\n" +
		"style unusedVariable other.cpp:12:7 Variable 'x' is not used\n" +
		"information toomanyconfigs :0:0 Too many #ifdef configurations\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestShortEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, emptyResult(), ShortOpts{}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSanitizeMessage(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"a\r\nb", "a b"},
		{"a\rb\nc", "a b c"},
		{"  padded\n", "padded"},
	}
	for _, tt := range tests {
		if got := sanitizeMessage(tt.in); got != tt.want {
			t.Errorf("sanitizeMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
