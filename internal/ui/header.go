package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is a labelled value in a header or result box.
// Fields render in the order given.
type Field struct {
	Key   string
	Value string
}

// Header is a bordered banner with a title, a subtitle and a list of fields
type Header struct {
	Title    string  // e.g., "AION configuration"
	Subtitle string  // e.g., the config file path
	Fields   []Field // e.g., {"Provider", "Ollama"}
	Width    int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, subtitle string, fields []Field) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Fields:   fields,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := []string{HeaderTitleStyle.Render(strings.ToUpper(h.Title))}
	if h.Subtitle != "" {
		top = append(top, HeaderSubtitleStyle.Render(h.Subtitle))
	}
	topSection := lipgloss.JoinVertical(lipgloss.Left, top...)

	if len(h.Fields) == 0 {
		return HeaderBorderStyle(width).Render(topSection)
	}

	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := "  " + RenderHorizontalDivider(dividerWidth, "─")

	// Align values on the longest key
	keyWidth := 0
	for _, f := range h.Fields {
		if w := lipgloss.Width(f.Key); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, len(h.Fields))
	for _, f := range h.Fields {
		key := HeaderKeyStyle.Render(f.Key + ":" + strings.Repeat(" ", keyWidth-lipgloss.Width(f.Key)))
		lines = append(lines, key+" "+HeaderValueStyle.Render(f.Value))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(lines, "\n"))
	return HeaderBorderStyle(width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
