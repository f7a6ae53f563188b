package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
	Rand    *Rand

	// Delays is all zero so tests never sleep.
	Delays config.Delays
}

// New builds a console that reads the given lines in order, writes
// uncoloured output to Output and logs nowhere.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(Script(lines...), output, console.PlainPainter{}),
		Output:  output,
		Rand:    NewRand(t),
	}
}

// Script joins lines into an input stream, one line per entry.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Rand is a testify mock of entity.Randomizer.
type Rand struct {
	mock.Mock
}

func NewRand(t *testing.T) *Rand {
	t.Helper()

	rng := &Rand{}
	rng.Test(t)

	t.Cleanup(func() {
		rng.AssertExpectations(t)
	})

	return rng
}

func (that *Rand) IntN(n int) int {
	args := that.Called(n)
	return args.Int(0)
}

// Sequence is a scripted entity.Randomizer that replays values in order,
// reducing each modulo n.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (that *Sequence) IntN(n int) int {
	if len(that.values) == 0 {
		return 0
	}
	v := that.values[that.next%len(that.values)]
	that.next++
	return v % n
}
