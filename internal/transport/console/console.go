package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

const (
	bannerLine  = "\t========================================="
	dividerLine = "\n\t-----------------------------------------"
	brandLine   = "\n  // CONSOLE GAME HUB //"
)

var (
	errEmptyInput = errors.New("input required")
	errNotNumber  = errors.New("invalid format, numbers only")
	errOutOfRange = errors.New("value out of range")
	errOverflow   = errors.New("value overflows int")
)

// Console is the line-oriented terminal every game talks to.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	painter Painter
	sleep   func(time.Duration)
}

func New(in io.Reader, out io.Writer, painter Painter) *Console {
	if painter == nil {
		painter = PlainPainter{}
	}

	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		painter: painter,
		sleep:   time.Sleep,
	}
}

func (that *Console) Print(level Level, text string) {
	_, _ = io.WriteString(that.out, that.painter.Paint(level, text))
}

func (that *Console) Println(level Level, text string) {
	that.Print(level, text)
	_, _ = io.WriteString(that.out, "\n")
}

func (that *Console) Printf(level Level, format string, args ...any) {
	that.Print(level, fmt.Sprintf(format, args...))
}

func (that *Console) Clear() {
	_, _ = io.WriteString(that.out, that.painter.ClearScreen())
}

// Header draws the branding line and a boxed screen title.
func (that *Console) Header(title string) {
	that.Println(LevelBrand, brandLine)
	that.Println(LevelAccent, bannerLine)
	that.Println(LevelAccent, "\t   "+title)
	that.Println(LevelAccent, bannerLine+"\n")
}

func (that *Console) Divider() {
	that.Print(LevelAccent, dividerLine)
}

// Sleep blocks for d. Non-positive durations return at once.
func (that *Console) Sleep(d time.Duration) {
	if d > 0 {
		that.sleep(d)
	}
}

func (that *Console) Pause() error {
	if _, err := that.ReadLine("\n\tPress [ENTER] to return..."); err != nil {
		return fmt.Errorf("failed to wait for enter: %w", err)
	}
	return nil
}

// ReadLine prints prompt and returns the next input line without its terminator.
// A closed input stream yields apperror.ErrInputClosed.
func (that *Console) ReadLine(prompt string) (string, error) {
	that.Print(LevelDefault, prompt)

	line, err := that.in.ReadString('\n')
	if err != nil {
		if line == "" {
			if errors.Is(err, io.EOF) {
				return "", apperror.ErrInputClosed
			}
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt keeps prompting until the line is a non-negative integer within
// [lo, hi]. A leading minus sign is always rejected, even when lo < 0.
// Every rejection prints its own diagnostic; only a closed input stream
// ends the loop with an error.
func (that *Console) ReadInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseBoundedInt(line, lo, hi)
		if err == nil {
			return value, nil
		}

		that.Println(LevelError, diagnostic(err, lo, hi))
	}
}

// ParseBoundedInt validates one line of input: empty, then format, then
// overflow and range.
func ParseBoundedInt(input string, lo, hi int) (int, error) {
	if input == "" {
		return 0, errEmptyInput
	}

	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, fmt.Errorf("%w: %q", errNotNumber, input)
		}
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errOverflow, input)
	}

	if value < lo || value > hi {
		return 0, fmt.Errorf("%w: %d", errOutOfRange, value)
	}

	return value, nil
}

func diagnostic(err error, lo, hi int) string {
	switch {
	case errors.Is(err, errEmptyInput):
		return "\t[!] Input required."
	case errors.Is(err, errNotNumber):
		return "\t[!] Invalid format. Numbers only."
	case errors.Is(err, errOutOfRange):
		return fmt.Sprintf("\t[!] Range Error: Enter %d-%d.", lo, hi)
	case errors.Is(err, errOverflow):
		return "\t[!] Overflow Error."
	default:
		return "\t[!] Invalid input."
	}
}
