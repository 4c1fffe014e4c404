package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// shouldUseColor resolves auto against w and honours NO_COLOR.
func shouldUseColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return isTerminal(w)
	}
}
