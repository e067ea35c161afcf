package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/hangman/internal/game"
	"github.com/idilsaglam/hangman/internal/model"
	"github.com/idilsaglam/hangman/internal/ui"
)

// wordSource is the part of the store the game reads from.
type wordSource interface {
	Get(d model.Difficulty) ([]string, error)
}

type screen int

const (
	screenPick screen = iota
	screenPlay
	screenWon
	screenLost
	screenQuit
)

// difficultyItem adapts a Difficulty to bubbles/list.Item
type difficultyItem struct {
	d     model.Difficulty
	label string
}

func (i difficultyItem) Title() string       { return string(i.d) }
func (i difficultyItem) Description() string { return i.label }
func (i difficultyItem) FilterValue() string { return string(i.d) }

type keyMap struct {
	Guess, Restart, Pick, Exit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Restart, k.Pick, k.Exit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Guess:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
	Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "start over")),
	Pick:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "difficulty")),
	Exit:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "exit")),
}

type gameTUI struct {
	words wordSource
	rng   *rand.Rand
	log   zerolog.Logger

	state      *game.State
	difficulty model.Difficulty
	roundID    string

	screen screen
	picker list.Model
	input  textinput.Model
	help   help.Model
	err    string

	// set when the player asked to see the word on exit
	reveal bool
}

func newGameTUI(words wordSource, alphabet game.Alphabet, rng *rand.Rand, log zerolog.Logger) gameTUI {
	labels := []string{"Простой · short words", "Средний · five letters", "Сложный · long words"}
	items := make([]list.Item, 0, 3)
	for i, d := range model.Difficulties() {
		items = append(items, difficultyItem{d: d, label: labels[i]})
	}
	l := list.New(items, list.NewDefaultDelegate(), 40, 14)
	l.Title = "Choose difficulty"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Prompt = "Letter: "
	ti.Placeholder = "?"
	ti.CharLimit = 1
	ti.Width = 4

	return gameTUI{
		words:  words,
		rng:    rng,
		log:    log,
		state:  game.New(alphabet),
		picker: l,
		input:  ti,
		help:   help.New(),
	}
}

// runGame starts the Bubble Tea program; a non-empty start skips the picker.
func runGame(words wordSource, alphabet game.Alphabet, start model.Difficulty, log zerolog.Logger) error {
	applyTheme(ui.Current(), ui.ColorEnabled())
	seed := rand.Uint64()
	m := newGameTUI(words, alphabet, rand.New(rand.NewPCG(seed, seed>>1)), log)
	if start != "" {
		m, _ = m.newRound(start)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(gameTUI)
	if !ok {
		return nil
	}
	if fm.reveal && fm.state.Word() != "" {
		fmt.Fprintln(ui.Out, "The secret word was: "+wordStyle.Render(fm.state.Word()))
	}
	return nil
}

// newRound picks a word for d and starts playing it.
func (m gameTUI) newRound(d model.Difficulty) (gameTUI, tea.Cmd) {
	pool, err := m.words.Get(d)
	if err != nil {
		m.err = err.Error()
		m.screen = screenPick
		return m, nil
	}
	playable := m.state.Playable(pool)
	if skipped := len(pool) - len(playable); skipped > 0 {
		m.log.Debug().Str("difficulty", string(d)).Int("skipped", skipped).Msg("words outside the alphabet")
	}
	word, err := game.Choose(playable, m.rng)
	if err != nil {
		m.err = fmt.Sprintf("no playable %s words stored, add some with `hangman words add`", d)
		m.screen = screenPick
		return m, nil
	}
	if err := m.state.Start(word); err != nil {
		m.err = fmt.Sprintf("%q cannot be played: %v", word, err)
		m.screen = screenPick
		return m, nil
	}

	m.difficulty = d
	m.roundID = uuid.NewString()
	m.err = ""
	m.screen = screenPlay
	m.input.SetValue("")
	m.log.Info().Str("round", m.roundID).Str("difficulty", string(d)).Int("letters", len([]rune(word))).Msg("round started")
	return m, m.input.Focus()
}

func (m gameTUI) Init() tea.Cmd {
	if m.screen == screenPlay {
		return textinput.Blink
	}
	return nil
}

func (m gameTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.picker.SetSize(msg.Width-4, msg.Height-4)
		m.help.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenPick:
		return m.updatePick(msg)
	case screenPlay:
		return m.updatePlay(msg)
	case screenWon:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter", "esc":
				m.screen = screenPick
			case "ctrl+d", "q":
				return m, tea.Quit
			}
		}
	case screenLost:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "y", "enter":
				m.screen = screenPick
			case "n", "q", "ctrl+d":
				return m, tea.Quit
			}
		}
	case screenQuit:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "y":
				m.reveal = true
				return m, tea.Quit
			case "n":
				return m, tea.Quit
			case "esc":
				m.screen = screenPlay
				return m, m.input.Focus()
			}
		}
	}
	return m, nil
}

func (m gameTUI) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			it, ok := m.picker.SelectedItem().(difficultyItem)
			if !ok {
				return m, nil
			}
			return m.newRound(it.d)
		case "q", "esc", "ctrl+d":
			if m.state.Word() != "" && !m.state.Over() {
				m.screen = screenQuit
				return m, nil
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m gameTUI) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Guess):
			letter := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			switch m.state.Guess(letter) {
			case game.Win:
				m.input.Blur()
				m.screen = screenWon
				m.log.Info().Str("round", m.roundID).Str("word", m.state.Word()).Int("attempts", m.state.Attempts()).Msg("round won")
			case game.Lose:
				m.input.Blur()
				m.screen = screenLost
				m.log.Info().Str("round", m.roundID).Str("word", m.state.Word()).Msg("round lost")
			}
			return m, nil
		case key.Matches(k, keys.Restart):
			m.state.Reset()
			m.input.SetValue("")
			m.log.Debug().Str("round", m.roundID).Msg("round restarted")
			return m, nil
		case key.Matches(k, keys.Pick):
			m.input.Blur()
			m.screen = screenPick
			return m, nil
		case key.Matches(k, keys.Exit):
			m.input.Blur()
			m.screen = screenQuit
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m gameTUI) View() string {
	var content string
	switch m.screen {
	case screenPick:
		content = m.picker.View()
		if m.err != "" {
			content += "\n" + errorStyle.Render(m.err)
		}
		content += "\n" + helpStyle.Render("enter: play • q: exit")
	case screenPlay:
		content = m.board() + "\n\n" + m.input.View() + "\n\n" + m.help.View(keys)
	case screenWon:
		content = m.board() + "\n\n" +
			successStyle.Render("You guessed the word: "+m.state.Word()) + "\n" +
			helpStyle.Render("enter: choose difficulty • q: exit")
	case screenLost:
		content = m.board() + "\n\n" +
			errorStyle.Render("Game over.") + " The word was: " + wordStyle.Render(m.state.Word()) + "\n" +
			"Play again? " + helpStyle.Render("(y/n)")
	case screenQuit:
		content = m.board() + "\n\n" +
			"Show the secret word before leaving? " + helpStyle.Render("(y/n, esc to keep playing)")
	}
	return panelString(content)
}

// board draws the gallows next to the word, the guessed letters and the
// attempts left.
func (m gameTUI) board() string {
	v := m.state.Render()

	attempts := fmt.Sprintf("Attempts left: %d", v.Attempts)
	if v.Attempts <= 2 {
		attempts = pendingStyle.Render(attempts)
	}
	letters := v.Letters()
	if letters == "" {
		letters = "-"
	}
	info := strings.Join([]string{
		titleStyle.Render("Hangman") + mutedStyle.Render(" · "+string(m.difficulty)),
		"",
		wordStyle.Render(v.MaskedWord()),
		"",
		"Letters: " + mutedStyle.Render(letters),
		attempts,
		mutedStyle.Render(ui.ProgressBar(v.Attempts, game.MaxAttempts, 12)),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, gallowsStyle.Render(gallowsFor(v.Attempts)), info)
}
