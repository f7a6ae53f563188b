package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

const (
	HangmanLives = 6
	hiddenLetter = '_'
)

// HangmanWords is the dictionary secrets are drawn from.
var HangmanWords = []string{
	"PROGRAMMING",
	"COMPUTER",
	"KEYBOARD",
	"DEVELOPER",
	"ALGORITHM",
	"VARIABLE",
	"POINTER",
}

// toUpper builds a fresh Caser per call since a Caser may carry state.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

type Hangman struct {
	secret   string
	revealed []byte
	guessed  []byte
	lives    int
}

// NewHangman draws a secret uniformly from words.
func NewHangman(rng Randomizer, words []string) *Hangman {
	return NewHangmanWith(words[rng.IntN(len(words))])
}

func NewHangmanWith(secret string) *Hangman {
	secret = toUpper(secret)

	return &Hangman{
		secret:   secret,
		revealed: []byte(strings.Repeat(string(hiddenLetter), len(secret))),
		lives:    HangmanLives,
	}
}

// Guess applies one letter. Rejected input costs no life and changes nothing.
// found reports whether the letter occurs in the secret.
func (that *Hangman) Guess(input string) (found bool, err error) {
	if that.IsFinished() {
		return false, apperror.ErrGameFinished
	}

	letter, err := parseLetter(input)
	if err != nil {
		return false, err
	}

	if that.HasGuessed(letter) {
		return false, fmt.Errorf("%w: %c", apperror.ErrAlreadyGuessed, letter)
	}

	that.guessed = append(that.guessed, letter)

	for i := 0; i < len(that.secret); i++ {
		if that.secret[i] == letter {
			that.revealed[i] = letter
			found = true
		}
	}

	if !found {
		that.lives--
	}

	return found, nil
}

func (that *Hangman) HasGuessed(letter byte) bool {
	for _, g := range that.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

func (that *Hangman) Won() bool {
	return string(that.revealed) == that.secret
}

func (that *Hangman) Lost() bool {
	return that.lives <= 0
}

func (that *Hangman) IsFinished() bool {
	return that.Won() || that.Lost()
}

func (that *Hangman) Lives() int {
	return that.lives
}

func (that *Hangman) Secret() string {
	return that.secret
}

// Revealed returns the masked word, '_' for letters not found yet.
func (that *Hangman) Revealed() string {
	return string(that.revealed)
}

// Guessed returns the attempted letters in order.
func (that *Hangman) Guessed() string {
	return string(that.guessed)
}

func parseLetter(input string) (byte, error) {
	if len(input) != 1 || !isASCIILetter(input[0]) {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotSingleLetter, input)
	}

	return toUpper(input)[0], nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
