package cli

import "github.com/idilsaglam/hangman/internal/game"

// gallows stages, indexed by attempts left
var gallows = [game.MaxAttempts + 1]string{
	` +---+
 |   |
 |   O
 |  /|\
 |  / \
 |
===`,
	` +---+
 |   |
 |   O
 |  /|\
 |  /
 |
===`,
	` +---+
 |   |
 |   O
 |  /|\
 |
 |
===`,
	` +---+
 |   |
 |   O
 |  /|
 |
 |
===`,
	` +---+
 |   |
 |   O
 |   |
 |
 |
===`,
	` +---+
 |   |
 |   O
 |
 |
 |
===`,
	` +---+
 |   |
 |
 |
 |
 |
===`,
}

func gallowsFor(attempts int) string {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > game.MaxAttempts {
		attempts = game.MaxAttempts
	}
	return gallows[attempts]
}
