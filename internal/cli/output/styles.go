package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
}

// NewStyles creates colored styles bound to renderer.
func NewStyles(renderer *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C542")).Underline(true),
		Header2:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7")),
		Bold:     renderer.NewStyle().Bold(true),
		Muted:    renderer.NewStyle().Foreground(lipgloss.Color("#737A8C")),
		Success:  renderer.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),
		Warning:  renderer.NewStyle().Foreground(lipgloss.Color("#E0AF68")),
		Error:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E")),
		Info:     renderer.NewStyle().Foreground(lipgloss.Color("#7DCFFF")),
		FilePath: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#BB9AF7")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header1:  plain,
		Header2:  plain,
		Bold:     plain,
		Muted:    plain,
		Success:  plain,
		Warning:  plain,
		Error:    plain,
		Info:     plain,
		FilePath: plain,
	}
}
