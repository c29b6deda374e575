// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostics logger. quiet keeps errors only, verbose
// adds debug output.
func NewLogger(dst io.Writer, quiet, verbose bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	l := log.NewWithOptions(dst, log.Options{
		Prefix: "keggmod",
		Level:  level,
	})

	st := log.DefaultStyles()
	st.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("214"))
	st.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("204"))
	l.SetStyles(st)
	return l
}
