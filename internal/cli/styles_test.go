package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/hangman/internal/ui"
)

func TestApplyThemePalettes(t *testing.T) {
	t.Cleanup(func() {
		ui.SetTheme("classic")
		applyTheme(ui.Current(), true)
	})

	ui.SetTheme("neon")
	applyTheme(ui.Current(), true)
	if got := wordStyle.GetForeground(); got != lipgloss.Color("51") {
		t.Fatalf("neon word colour = %v", got)
	}

	ui.SetTheme("classic")
	applyTheme(ui.Current(), true)
	if got := wordStyle.GetForeground(); got != lipgloss.Color("12") {
		t.Fatalf("classic word colour = %v", got)
	}
}

func TestApplyThemeWithoutColour(t *testing.T) {
	t.Cleanup(func() {
		ui.SetTheme("classic")
		applyTheme(ui.Current(), true)
	})

	ui.SetTheme("classic")
	applyTheme(ui.Current(), false)
	for name, s := range map[string]lipgloss.Style{"word": wordStyle, "error": errorStyle, "gallows": gallowsStyle} {
		if _, ok := s.GetForeground().(lipgloss.NoColor); !ok {
			t.Fatalf("%s style kept a colour with -no-color: %v", name, s.GetForeground())
		}
	}

	ui.SetTheme("mono")
	applyTheme(ui.Current(), true)
	if _, ok := wordStyle.GetForeground().(lipgloss.NoColor); !ok {
		t.Fatal("mono theme must not colour the word")
	}
	if panelStyle.GetBorderStyle() != lipgloss.NormalBorder() {
		t.Fatal("mono theme should use a plain border")
	}
	if !wordStyle.GetBold() {
		t.Fatal("attributes survive without colour")
	}
}
