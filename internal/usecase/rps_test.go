package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub/testing/suite"
)

func TestRPSUseCase_Play(t *testing.T) {
	// Given: rock vs scissors, paper vs scissors, scissors vs scissors, then return
	ctx, st := suite.New(t, "1", "", "2", "", "3", "", "0")
	st.Rand.On("IntN", 3).Return(2).Times(3)
	useCase := NewRPSUseCase(st.Logger, st.Console, st.Rand, st.Delays)

	// When: playing
	err := useCase.Play(ctx)

	// Then: the rounds end in a win, a loss and a tie
	require.NoError(t, err)
	assertInOrder(t, st.Output.String(),
		"You deployed: Rock",
		"CPU deployed: Scissors",
		"CRITICAL HIT (WIN)",
		"You deployed: Paper",
		"CPU deployed: Scissors",
		"DEFEAT",
		"You deployed: Scissors",
		"CPU deployed: Scissors",
		"NO DAMAGE (TIE)",
	)
}
