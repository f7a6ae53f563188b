package entity

type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

type RoundResult int

const (
	Tie RoundResult = iota
	Win
	Loss
)

// Moves is the CPU draw pool, indexed by Randomizer.IntN(len(Moves)).
var Moves = []Move{Rock, Paper, Scissors}

// beats maps every move to the one it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

var moveNames = map[Move]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

// Resolve scores one round from the player's point of view.
func Resolve(player, cpu Move) RoundResult {
	switch {
	case player == cpu:
		return Tie
	case beats[player] == cpu:
		return Win
	default:
		return Loss
	}
}

func RandomMove(rng Randomizer) Move {
	return Moves[rng.IntN(len(Moves))]
}

func (that Move) String() string {
	if name, ok := moveNames[that]; ok {
		return name
	}
	return "Unknown"
}

func (that RoundResult) String() string {
	switch that {
	case Tie:
		return "tie"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}
