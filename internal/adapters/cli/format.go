// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// the computation to services.
package cli

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const separator = "--------------------------------------------------"

var (
	headerColor = color.New(color.FgHiCyan, color.Bold)
	answerColor = color.New(color.FgHiGreen, color.Bold)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	mutedColor  = color.New(color.FgYellow)
)

// formatList renders values as "[a, b, c]".
func formatList(values []int) string {
	return "[" + joinInts(values, ", ") + "]"
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// checkMark returns a colored ✓ or ✗.
func checkMark(ok bool) string {
	if ok {
		return okColor.Sprint("✓")
	}
	return failColor.Sprint("✗")
}
