package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored_PlainWhenColorDisabled(t *testing.T) {
	origNoColor, origVersion := color.NoColor, Version
	t.Cleanup(func() {
		color.NoColor = origNoColor
		Version = origVersion
	})
	color.NoColor = true

	cases := []string{"1.2.3", "0.1.0-dev", "1.2.3-rc.1+build.123", "dev", "1.2"}
	for _, v := range cases {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with %q = %q", v, got)
		}
	}
}

func TestColored_AddsEscapes(t *testing.T) {
	origNoColor, origVersion := color.NoColor, Version
	t.Cleanup(func() {
		color.NoColor = origNoColor
		Version = origVersion
	})
	color.NoColor = false
	Version = "1.2.3"

	if got := Colored(); got == Version {
		t.Fatalf("Colored() should contain escape sequences, got %q", got)
	}
}
