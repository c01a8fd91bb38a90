package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirmation describes a destructive operation the user must confirm
// by typing Token.
type Confirmation struct {
	Title     string
	Warnings  []string
	Prompt    string // e.g., `Type "yes" and press Enter: `
	Token     string
	Cancelled string // Printed when the answer does not match
}

// Confirm displays a warning box and reads one line from in.
// It returns true only when the trimmed line equals c.Token.
func (p *Printer) Confirm(in io.Reader, c Confirmation) bool {
	lines := []string{
		"",
		WarningTitleStyle.Render("   " + WarningMarker + "  " + c.Title),
		"",
	}
	for _, w := range c.Warnings {
		lines = append(lines, ResultValueStyle.Render("   • "+w))
	}
	lines = append(lines, "")

	p.Println(ResultBoxStyle(p.width, WarningColor).Render(strings.Join(lines, "\n")))
	p.Newline()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render(c.Prompt))

	input, err := bufio.NewReader(in).ReadString('\n')
	p.Newline()
	if err != nil && input == "" {
		return false
	}

	if strings.TrimSpace(input) == c.Token {
		return true
	}

	if c.Cancelled != "" {
		p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  " + c.Cancelled))
	}
	return false
}
