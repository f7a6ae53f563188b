package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/testing/suite"
)

func TestDiceUseCase_Play(t *testing.T) {
	t.Run("Rolls doubles then returns", func(t *testing.T) {
		// Given: roll, pause, roll, pause, return
		ctx, st := suite.New(t, "1", "", "1", "", "0")
		st.Rand.On("IntN", entity.DieFaces).Return(2).Twice()
		st.Rand.On("IntN", entity.DieFaces).Return(0).Once()
		st.Rand.On("IntN", entity.DieFaces).Return(5).Once()
		useCase := NewDiceUseCase(st.Logger, st.Console, st.Rand, st.Delays)

		// When: playing
		err := useCase.Play(ctx)

		// Then: the first roll is doubles and the second is not
		require.NoError(t, err)
		out := st.Output.String()
		assert.Contains(t, out, "[ DIE 1: 3 ]   [ DIE 2: 3 ]")
		assert.Contains(t, out, "CRITICAL HIT! DOUBLES!")
		assert.Contains(t, out, "[ DIE 1: 1 ]   [ DIE 2: 6 ]")
		assert.Contains(t, out, "No match.")
	})

	t.Run("Returns immediately on zero", func(t *testing.T) {
		ctx, st := suite.New(t, "0")
		useCase := NewDiceUseCase(st.Logger, st.Console, st.Rand, st.Delays)

		err := useCase.Play(ctx)

		require.NoError(t, err)
		assert.NotContains(t, st.Output.String(), "DIE 1")
	})

	t.Run("Error on closed input", func(t *testing.T) {
		// Given: input ends at the pause prompt
		ctx, st := suite.New(t, "1")
		st.Rand.On("IntN", entity.DieFaces).Return(1).Twice()
		useCase := NewDiceUseCase(st.Logger, st.Console, st.Rand, st.Delays)

		// When: playing
		err := useCase.Play(ctx)

		// Then: ErrInputClosed reaches the caller
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
