package model

import (
	"errors"
	"strings"
	"unicode"
)

// Word is the domain model for a stored hangman word.
type Word struct {
	ID         int64      `json:"id"`
	Text       string     `json:"word"`
	Difficulty Difficulty `json:"difficulty"`
}

// Difficulty is one of three fixed tiers used to filter word selection.
// Values are persisted as their literal labels.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var (
	ErrInvalidWord       = errors.New("word must contain letters only")
	ErrInvalidDifficulty = errors.New(`difficulty must be one of "Easy", "Medium", "Hard"`)
)

// Difficulties lists the tiers in menu order.
func Difficulties() []Difficulty { return []Difficulty{Easy, Medium, Hard} }

// localized labels used by the original word list
var localized = map[string]Difficulty{
	"простой": Easy,
	"средний": Medium,
	"сложный": Hard,
}

// ParseDifficulty accepts the English label in any case or its Russian label.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties() {
		if s == strings.ToLower(string(d)) {
			return d, nil
		}
	}
	if d, ok := localized[s]; ok {
		return d, nil
	}
	return "", ErrInvalidDifficulty
}

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

func (d Difficulty) String() string { return string(d) }

// NormalizeWord trims and lower-cases text the way it is stored and played.
func NormalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ValidateWord rejects empty text and anything that is not a Unicode letter.
func ValidateWord(text string) error {
	if text == "" {
		return ErrInvalidWord
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return ErrInvalidWord
		}
	}
	return nil
}
