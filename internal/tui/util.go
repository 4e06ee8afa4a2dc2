package tui

import (
	"fmt"
	"path/filepath"
	"strings"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func baseName(p string) string {
	if p == "" {
		return "<pasted>"
	}
	return filepath.Base(p)
}

func tex(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func fmtInt(v int) string { return fmt.Sprintf("%d", v) }
