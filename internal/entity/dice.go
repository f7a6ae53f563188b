package entity

// Randomizer is the source of every random draw in the hub.
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

const DieFaces = 6

type DiceRoll struct {
	First  int
	Second int
}

// RollDice draws two independent values in [1, DieFaces].
func RollDice(rng Randomizer) DiceRoll {
	return DiceRoll{
		First:  rng.IntN(DieFaces) + 1,
		Second: rng.IntN(DieFaces) + 1,
	}
}

func (that DiceRoll) Doubles() bool {
	return that.First == that.Second
}
