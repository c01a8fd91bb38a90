package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout defaults used before the first tea.WindowSizeMsg arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	MinPaneWidth  = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red
	CurrentColor   = lipgloss.Color("#00D7D7") // Cyan

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// styles is the set of styles for one render. With colors off every style
// keeps its layout but drops foreground and border colors.
type styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Pane        lipgloss.Style
	PaneTitle   lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Unsupported lipgloss.Style
	Input       lipgloss.Style
	Label       lipgloss.Style
	Help        lipgloss.Style
	Status      lipgloss.Style
	Spinner     lipgloss.Style
	DotCurrent  lipgloss.Style
	DotDone     lipgloss.Style
	DotPending  lipgloss.Style
}

func newStyles(useColors bool) styles {
	color := func(s lipgloss.Style, c lipgloss.Color) lipgloss.Style {
		if !useColors {
			return s
		}
		return s.Foreground(c)
	}
	border := func(s lipgloss.Style) lipgloss.Style {
		if !useColors {
			return s
		}
		return s.BorderForeground(BorderColor)
	}

	return styles{
		Title:    color(lipgloss.NewStyle().Bold(true), PrimaryColor),
		Subtitle: color(lipgloss.NewStyle(), SubtleColor),
		Pane: border(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)),
		PaneTitle:   color(lipgloss.NewStyle().Bold(true), PrimaryColor),
		Item:        color(lipgloss.NewStyle().PaddingLeft(2), TextColor),
		Selected:    color(lipgloss.NewStyle().Bold(true), SecondaryColor),
		Unsupported: color(lipgloss.NewStyle().PaddingLeft(2), SubtleColor),
		Input:       color(lipgloss.NewStyle().Bold(true), PrimaryColor),
		Label:       color(lipgloss.NewStyle().Bold(true), TextColor),
		Help:        color(lipgloss.NewStyle(), SubtleColor),
		Status:      color(lipgloss.NewStyle(), TextColor),
		Spinner:     color(lipgloss.NewStyle(), PrimaryColor),
		DotCurrent:  color(lipgloss.NewStyle(), CurrentColor),
		DotDone:     color(lipgloss.NewStyle(), SecondaryColor),
		DotPending:  color(lipgloss.NewStyle(), ErrorColor),
	}
}

// renderContainer wraps header, body and footer in the full-screen frame:
// a bordered panel filling the terminal with the footer pinned under the body.
func renderContainer(useColors bool, header, body, footer string, width, height int) string {
	inner := width - 4
	if inner < MinPaneWidth {
		inner = MinPaneWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		Width(inner).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		Width(inner).
		Padding(0, 1)

	outer := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(width - 2).
		AlignVertical(lipgloss.Top)

	if useColors {
		headerStyle = headerStyle.BorderForeground(BorderColor)
		footerStyle = footerStyle.BorderForeground(BorderColor)
		outer = outer.BorderForeground(BorderColor)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		lipgloss.NewStyle().Width(inner).Render(body),
		footerStyle.Render(footer),
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Left,
		lipgloss.Top,
		outer.Render(content),
	)
}
