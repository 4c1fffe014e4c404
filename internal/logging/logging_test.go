package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_Levels(t *testing.T) {
	orig := Logger
	t.Cleanup(func() { Logger = orig })

	var buf bytes.Buffer
	Init(false, &buf)
	Logger.Debugw("parsed report", "groups", 2)
	Logger.Warnw("hostname unavailable", "err", "boom")
	out := buf.String()
	if strings.Contains(out, "parsed report") {
		t.Fatalf("debug entry written without --debug:\n%s", out)
	}
	if !strings.Contains(out, "hostname unavailable") || !strings.Contains(out, "boom") {
		t.Fatalf("warning entry missing:\n%s", out)
	}

	buf.Reset()
	Init(true, &buf)
	Logger.Debugw("parsed report", "groups", 2)
	if !strings.Contains(buf.String(), "parsed report") || !strings.Contains(buf.String(), "groups") {
		t.Fatalf("debug entry missing with debug enabled:\n%s", buf.String())
	}
}
