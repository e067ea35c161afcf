package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxAttempts is the incorrect-guess budget of a round.
const MaxAttempts = 6

// Placeholder masks letters that have not been guessed yet.
const Placeholder = '_'

var (
	ErrInvalidWord = errors.New("word has letters outside the alphabet")
	ErrNoWords     = errors.New("no words to choose from")
)

// Outcome is the result of a guess.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "continue"
}

// State tracks one round: the secret word, the guessed set and the
// remaining attempts. The zero value has no word; call Start first.
type State struct {
	alphabet Alphabet
	word     []rune
	guessed  map[rune]bool
	attempts int
	outcome  Outcome
}

// New returns a State that accepts guesses from alphabet.
func New(alphabet Alphabet) *State {
	return &State{alphabet: alphabet, guessed: map[rune]bool{}}
}

// Start begins a new round on word.
func (s *State) Start(word string) error {
	w, ok := s.playable(word)
	if !ok {
		return ErrInvalidWord
	}
	s.word = w
	s.Reset()
	return nil
}

func (s *State) playable(word string) ([]rune, bool) {
	w := []rune(strings.ToLower(strings.TrimSpace(word)))
	if len(w) == 0 {
		return nil, false
	}
	for _, r := range w {
		if !s.alphabet.Contains(r) {
			return nil, false
		}
	}
	return w, true
}

// Playable keeps the words Start would accept, in their original order.
func (s *State) Playable(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := s.playable(w); ok {
			out = append(out, w)
		}
	}
	return out
}

// Reset restarts the round on the current word.
func (s *State) Reset() {
	s.guessed = map[rune]bool{}
	s.attempts = MaxAttempts
	s.outcome = Continue
}

// Guess records letter and reports the round outcome. Input that is not a
// single alphabet letter, a repeated letter, or a guess after the round
// ended leaves the state untouched.
func (s *State) Guess(letter string) Outcome {
	if len(s.word) == 0 || s.outcome != Continue {
		return s.outcome
	}
	letter = strings.ToLower(letter)
	if utf8.RuneCountInString(letter) != 1 {
		return s.outcome
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if !s.alphabet.Contains(r) || s.guessed[r] {
		return s.outcome
	}

	s.guessed[r] = true
	if !slices.Contains(s.word, r) {
		s.attempts--
	}

	switch {
	case s.solved():
		s.outcome = Win
	case s.attempts <= 0:
		s.attempts = 0
		s.outcome = Lose
	}
	return s.outcome
}

func (s *State) solved() bool {
	for _, r := range s.word {
		if !s.guessed[r] {
			return false
		}
	}
	return true
}

// Word returns the secret word.
func (s *State) Word() string { return string(s.word) }

func (s *State) Attempts() int { return s.attempts }

func (s *State) Outcome() Outcome { return s.outcome }

// Over reports whether the round has been won or lost.
func (s *State) Over() bool { return s.outcome != Continue }

// View is a read-only snapshot for display.
type View struct {
	Masked   []rune // one slot per letter of the word
	Guessed  []rune // sorted
	Attempts int
}

// Render snapshots the round for display.
func (s *State) Render() View {
	v := View{
		Masked:   make([]rune, len(s.word)),
		Guessed:  make([]rune, 0, len(s.guessed)),
		Attempts: s.attempts,
	}
	for i, r := range s.word {
		if s.guessed[r] {
			v.Masked[i] = r
		} else {
			v.Masked[i] = Placeholder
		}
	}
	for r := range s.guessed {
		v.Guessed = append(v.Guessed, r)
	}
	slices.Sort(v.Guessed)
	return v
}

// MaskedWord joins the slots with spaces, e.g. "к _ т".
func (v View) MaskedWord() string {
	parts := make([]string, len(v.Masked))
	for i, r := range v.Masked {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Letters returns the guessed letters as one string.
func (v View) Letters() string { return string(v.Guessed) }

// Hidden counts the slots still showing the placeholder.
func (v View) Hidden() int {
	n := 0
	for _, r := range v.Masked {
		if r == Placeholder {
			n++
		}
	}
	return n
}

// Choose picks the secret word for a round from a difficulty-filtered list.
func Choose(words []string, rng *rand.Rand) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	return words[rng.IntN(len(words))], nil
}
