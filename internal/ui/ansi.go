// Package ui holds the terminal-facing presentation layer: the
// styled ANSI catalog renderer and the interactive browser.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"snag/internal/note"
)

var (
	ansiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	ansiLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ansiCodeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)
	ansiRuleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ANSI renders the catalog with lipgloss styling for terminals.
// Width bounds the rule under each title; 0 means a default of 72.
type ANSI struct {
	Width int
}

func (a ANSI) Render(w io.Writer, c *note.Catalog) error {
	width := a.Width
	if width <= 0 {
		width = 72
	}

	first := true
	for e := range c.All() {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := writeANSIEntry(w, e, width); err != nil {
			return err
		}
	}
	return nil
}

// renderEntry writes a single entry, used by the browser viewport.
func (a ANSI) renderEntry(w io.Writer, e note.Entry) error {
	width := a.Width
	if width <= 0 {
		width = 72
	}
	return writeANSIEntry(w, e, width)
}

func writeANSIEntry(w io.Writer, e note.Entry, width int) error {
	title := truncate(e.Title, width)
	rule := strings.Repeat("─", runewidth.StringWidth(title))
	if _, err := fmt.Fprintf(w, "%s\n%s\n",
		ansiTitleStyle.Render(title), ansiRuleStyle.Render(rule)); err != nil {
		return err
	}
	if e.Body != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", e.Body); err != nil {
			return err
		}
	}
	for _, ill := range e.Illustrations {
		label := ill.Label
		if label == "" {
			label = "example"
		}
		block := ansiCodeStyle.Render(strings.TrimSuffix(ill.Content, "\n"))
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", ansiLabelStyle.Render(label), block); err != nil {
			return err
		}
	}
	return nil
}

// truncate cuts s to the given display width, appending an ellipsis
// when something was dropped.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
