package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gamehub/testing/suite"
)

func TestResolve(t *testing.T) {
	table := map[Move]map[Move]RoundResult{
		Rock:     {Rock: Tie, Paper: Loss, Scissors: Win},
		Paper:    {Rock: Win, Paper: Tie, Scissors: Loss},
		Scissors: {Rock: Loss, Paper: Win, Scissors: Tie},
	}

	counts := map[RoundResult]int{}
	for player, row := range table {
		for cpu, want := range row {
			// When: resolving the pair
			got := Resolve(player, cpu)

			// Then: it matches the dominance table
			assert.Equal(t, want, got, "%s vs %s", player, cpu)
			counts[got]++
		}
	}

	// Then: 3 ties, 3 wins and 3 losses
	assert.Equal(t, map[RoundResult]int{Tie: 3, Win: 3, Loss: 3}, counts)
}

func TestRandomMove(t *testing.T) {
	// Given: a random source returning each index once
	rng := suite.NewRand(t)
	rng.On("IntN", 3).Return(0).Once()
	rng.On("IntN", 3).Return(1).Once()
	rng.On("IntN", 3).Return(2).Once()

	// When/Then: the moves come out in table order
	assert.Equal(t, Rock, RandomMove(rng))
	assert.Equal(t, Paper, RandomMove(rng))
	assert.Equal(t, Scissors, RandomMove(rng))
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "Rock", Rock.String())
	assert.Equal(t, "Paper", Paper.String())
	assert.Equal(t, "Scissors", Scissors.String())
	assert.Equal(t, "Unknown", Move(0).String())
}
