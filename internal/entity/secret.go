package entity

const (
	SecretMin = 1
	SecretMax = 100
)

type Hint int

const (
	TooLow Hint = iota
	TooHigh
	Correct
)

// SecretNumber is one round of the number guessing game.
type SecretNumber struct {
	secret   int
	attempts int
	solved   bool
}

func NewSecretNumber(rng Randomizer) *SecretNumber {
	return NewSecretNumberWith(rng.IntN(SecretMax-SecretMin+1) + SecretMin)
}

func NewSecretNumberWith(secret int) *SecretNumber {
	return &SecretNumber{secret: secret}
}

// Guess counts an attempt and compares it with the secret.
func (that *SecretNumber) Guess(value int) Hint {
	that.attempts++

	switch {
	case value < that.secret:
		return TooLow
	case value > that.secret:
		return TooHigh
	default:
		that.solved = true
		return Correct
	}
}

func (that *SecretNumber) Attempts() int {
	return that.attempts
}

func (that *SecretNumber) Solved() bool {
	return that.solved
}

func (that Hint) String() string {
	switch that {
	case TooLow:
		return "too-low"
	case TooHigh:
		return "too-high"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}
