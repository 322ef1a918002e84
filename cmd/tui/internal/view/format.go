package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

const submitTimeout = 30 * time.Second

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// SubmitCtx returns a context with a standard timeout for calls to the employees API.
func SubmitCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), submitTimeout)
}

// FormatWarnings renders import warnings as a bullet list.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%d warning(s):\n", len(warnings))

	for _, w := range warnings {
		fmt.Fprintf(&b, "  • %s\n", w)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// FormatFieldErrors renders validation errors in field order.
func FormatFieldErrors(errs map[mobility.Field]string) string {
	var lines []string

	for _, f := range mobility.Fields {
		if msg, ok := errs[f]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", f, msg))
		}
	}

	return strings.Join(lines, "\n")
}
