package benefit

import (
	"errors"
	"fmt"
)

// Sentinel errors for building a BenefitGraph.
var (
	// ErrEmptyPlant is returned when a relationship names an empty plant.
	ErrEmptyPlant = errors.New("benefit: plant name is empty")

	// ErrSelfLoop is returned when a plant is recorded as helping itself.
	ErrSelfLoop = errors.New("benefit: plant cannot help itself")

	// ErrDuplicateEdge is returned under RejectDuplicates when an ordered
	// pair is recorded twice.
	ErrDuplicateEdge = errors.New("benefit: duplicate relationship")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("benefit: invalid option supplied")
)

// Edge is one directed benefit relationship: Helper helps Helped.
// Effect is an optional free-text description ("repels aphids").
type Edge struct {
	Helper string `json:"helper" yaml:"helper"`
	Helped string `json:"helped" yaml:"helped"`
	Effect string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// String renders the edge as "Helper → Helped (Effect)".
func (e Edge) String() string {
	if e.Effect == "" {
		return fmt.Sprintf("%s → %s", e.Helper, e.Helped)
	}

	return fmt.Sprintf("%s → %s (%s)", e.Helper, e.Helped, e.Effect)
}

// Less orders edges by (Helper, Helped).
func (e Edge) Less(o Edge) bool {
	if e.Helper != o.Helper {
		return e.Helper < o.Helper
	}

	return e.Helped < o.Helped
}

// DuplicatePolicy decides what Builder.Add does with a repeated ordered pair.
type DuplicatePolicy int

const (
	// LastWriteWins replaces the earlier relationship with the later one.
	LastWriteWins DuplicatePolicy = iota

	// RejectDuplicates fails the Add with ErrDuplicateEdge.
	RejectDuplicates
)

// String returns the policy name used in configuration files.
func (p DuplicatePolicy) String() string {
	switch p {
	case LastWriteWins:
		return "last-write-wins"
	case RejectDuplicates:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps a configuration name to a DuplicatePolicy.
// The empty string selects LastWriteWins.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "last-write-wins":
		return LastWriteWins, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return 0, fmt.Errorf("%w: unknown duplicate policy %q", ErrOptionViolation, s)
	}
}

// Option configures a Builder via functional arguments.
// Invalid options are recorded and surfaced by NewBuilder as ErrOptionViolation.
type Option func(*Options)

// Options holds Builder configuration.
type Options struct {
	// Policy decides how repeated ordered pairs are handled.
	Policy DuplicatePolicy

	// OnDuplicate is called under LastWriteWins with the replaced and the
	// replacing edge.
	OnDuplicate func(old, replacement Edge)

	err error
}

// DefaultOptions returns LastWriteWins with a no-op OnDuplicate hook.
func DefaultOptions() Options {
	return Options{
		Policy:      LastWriteWins,
		OnDuplicate: func(Edge, Edge) {},
	}
}

// WithDuplicatePolicy selects the duplicate handling policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) {
		switch p {
		case LastWriteWins, RejectDuplicates:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown duplicate policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithOnDuplicate registers a hook called when LastWriteWins replaces an edge.
func WithOnDuplicate(fn func(old, replacement Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDuplicate = fn
		}
	}
}
