package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/hangman/internal/ui"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   lipgloss.Style
	wordStyle    lipgloss.Style
	successStyle lipgloss.Style
	pendingStyle lipgloss.Style
	mutedStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	helpStyle    lipgloss.Style
	gallowsStyle lipgloss.Style
	panelStyle   lipgloss.Style
)

func init() { applyTheme(ui.Current(), true) }

// palette holds the colours a theme gives the game screen.
type palette struct {
	word, success, pending, err, frame string
}

var palettes = map[string]palette{
	"classic": {word: "12", success: "42", pending: "214", err: "9", frame: "8"},
	"neon":    {word: "51", success: "118", pending: "226", err: "197", frame: "213"},
}

// applyTheme rebuilds the game styles from the ui theme so -theme and
// -no-color reach the TUI too. Mono or colourless output keeps only
// bold/faint attributes.
func applyTheme(t ui.Theme, color bool) {
	p, ok := palettes[t.Name]
	if !ok {
		color = false
	}
	fg := func(c string) lipgloss.TerminalColor {
		if !color {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(c)
	}
	border := lipgloss.RoundedBorder()
	if t.Name == "mono" {
		border = lipgloss.NormalBorder()
	}

	titleStyle = lipgloss.NewStyle().Bold(true)
	wordStyle = lipgloss.NewStyle().Bold(true).Foreground(fg(p.word))
	successStyle = lipgloss.NewStyle().Foreground(fg(p.success)).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(fg(p.pending))
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(fg(p.err)).Bold(true)
	helpStyle = lipgloss.NewStyle().Faint(true)
	gallowsStyle = lipgloss.NewStyle().Foreground(fg(p.frame)).MarginRight(3)
	panelStyle = lipgloss.NewStyle().
		Border(border).
		BorderForeground(fg(p.frame)).
		Padding(0, 1)
}

func panelString(inner string) string {
	return panelStyle.Render(inner)
}
