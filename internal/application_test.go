package application

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
	"github.com/rocketscienceinc/gamehub/testing/suite"
)

func TestRun(t *testing.T) {
	t.Run("Plays every module once and exits", func(t *testing.T) {
		// Given: a script visiting all five modules in menu order
		ctx, st := suite.New(t)
		rng := suite.NewSequence(
			0, 0, // dice: 1 and 1
			41,   // secret: 42
			2, 6, // tic-tac-toe bot: slots 3 and 7
			2, // rps cpu: scissors
			6, // hangman: POINTER
		)
		input := suite.Script(
			"1", "1", "", "0", // dice
			"2", "42", "", // secret number
			"3", "2", "1", "2", "9", "", "0", // tic-tac-toe against the bot
			"4", "1", "", "0", // rps
			"5", "p", "o", "i", "n", "t", "e", "r", "", // hangman
			"0",
		)
		out := &bytes.Buffer{}

		// When: running the hub
		err := Run(ctx, st.Logger, &config.Config{}, input, out, console.PlainPainter{}, rng)

		// Then: every module reported its result and the hub said goodbye
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "DOUBLES")
		assert.Contains(t, text, "Target neutralized in 1 attempts!")
		assert.Contains(t, text, "MACHINE DOMINATION!")
		assert.Contains(t, text, "CRITICAL HIT (WIN)")
		assert.Contains(t, text, "You survived! Word: POINTER")
		assert.Contains(t, text, "Goodbye!")
	})

	t.Run("Closed input exits cleanly", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := Run(ctx, st.Logger, &config.Config{}, suite.Script("1"), &bytes.Buffer{}, console.PlainPainter{}, st.Rand)

		require.NoError(t, err)
	})

	t.Run("Uses the given random source", func(t *testing.T) {
		// Given: a tic-tac-toe bot that needs random draws
		ctx, st := suite.New(t)
		st.Rand.On("IntN", entity.BoardSize).Return(2).Once()
		st.Rand.On("IntN", entity.BoardSize).Return(6).Once()
		input := suite.Script("3", "2", "1", "2", "9", "", "0", "0")
		out := &bytes.Buffer{}

		// When: running the hub
		err := Run(ctx, st.Logger, &config.Config{}, input, out, console.PlainPainter{}, st.Rand)

		// Then: the bot wins the anti diagonal
		require.NoError(t, err)
		assert.Contains(t, out.String(), "MACHINE DOMINATION!")
	})
}
