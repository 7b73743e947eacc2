package candidate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/companion/combo"
)

// Group size bounds accepted by WithMaxGroupSize.
const (
	MinGroupSize        = 2
	MaxGroupSizeLimit   = 5
	DefaultMaxGroupSize = 4
)

// Sentinel errors for candidate generation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("candidate: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("candidate: invalid option supplied")
)

// Candidate is one ranked grouping: a scored base of preferred plants plus
// an optional single-plant Extension.
type Candidate struct {
	Base      combo.Scored
	Extension combo.Extension

	// Preferred counts how many of Plants() were selected by the user.
	Preferred int
}

// Plants returns base ∪ {extension plant}.
func (c Candidate) Plants() combo.Combination {
	if c.Extension.Empty() {
		return c.Base.Combination
	}

	return c.Base.Combination.With(c.Extension.Plant)
}

// Size returns the number of plants in the grouping.
func (c Candidate) Size() int {
	if c.Extension.Empty() {
		return c.Base.Combination.Len()
	}

	return c.Base.Combination.Len() + 1
}

// TotalScore returns Base.Score + Extension.Score.
func (c Candidate) TotalScore() int { return c.Base.Score + c.Extension.Score }

// ExtensionPreferred reports whether the extension plant is itself one of
// the user's preferred plants.
func (c Candidate) ExtensionPreferred() bool {
	return !c.Extension.Empty() && c.Preferred > c.Base.Combination.Len()
}

// String renders "{A, B} + C [3+1]".
func (c Candidate) String() string {
	if c.Extension.Empty() {
		return fmt.Sprintf("%s [%d]", c.Base.Combination, c.Base.Score)
	}

	return fmt.Sprintf("%s + %s [%d+%d]", c.Base.Combination, c.Extension.Plant, c.Base.Score, c.Extension.Score)
}

// Option configures Generate via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// MaxGroupSize bounds the plants per grouping, extension included.
	MaxGroupSize int

	// Extensions enables single-plant augmentation of bases.
	Extensions bool

	// Logger receives debug diagnostics.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns MaxGroupSize=4, extensions on, discard logger.
func DefaultOptions() Options {
	return Options{
		MaxGroupSize: DefaultMaxGroupSize,
		Extensions:   true,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxGroupSize bounds the total plants per grouping.
//
//	MinGroupSize ≤ n ≤ MaxGroupSizeLimit: accepted
//	otherwise: ErrOptionViolation
func WithMaxGroupSize(n int) Option {
	return func(o *Options) {
		if n < MinGroupSize || n > MaxGroupSizeLimit {
			o.err = fmt.Errorf("%w: MaxGroupSize must be in [%d,%d] (got %d)",
				ErrOptionViolation, MinGroupSize, MaxGroupSizeLimit, n)
			return
		}
		o.MaxGroupSize = n
	}
}

// WithoutExtensions disables single-plant augmentation.
func WithoutExtensions() Option {
	return func(o *Options) { o.Extensions = false }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
