package planner

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/companion/bed"
	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("planner: graph is nil")

// Request describes one planning call.
type Request struct {
	// Preferred are the plants the user wants in the garden.
	Preferred []string

	// MaxGroupSize bounds the plants per bed; 0 selects
	// candidate.DefaultMaxGroupSize.
	MaxGroupSize int

	// DisableExtensions turns off recommended additions.
	DisableExtensions bool
}

// Result is the outcome of Plan.
type Result struct {
	Beds []BedView `json:"beds" yaml:"beds"`

	// Unknown lists preferred names missing from the graph, sorted.
	Unknown []string `json:"unknown" yaml:"unknown"`
}

// BedView is a GardenBed in serializable form.
type BedView struct {
	Plants  []PlantView  `json:"plants" yaml:"plants"`
	Score   int          `json:"score" yaml:"score"`
	Effects []EffectView `json:"effects" yaml:"effects"`
}

// PlantView is one bed member with its role ("preferred" or "recommended").
type PlantView struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// EffectView is one benefit relationship inside a bed.
type EffectView struct {
	Helper string `json:"helper" yaml:"helper"`
	Helped string `json:"helped" yaml:"helped"`
	Effect string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// Option configures Plan.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the structured logger used by Plan and passed down to
// candidate generation.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Plan runs generation and partitioning for req against g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - candidate.ErrOptionViolation if req.MaxGroupSize is out of range.
//   - ctx.Err() if ctx is done before partitioning starts.
func Plan(ctx context.Context, g *benefit.Graph, req Request, opts ...Option) (*Result, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	preferred := append([]string(nil), req.Preferred...)
	_, unknown := candidate.Split(g, preferred)
	if len(unknown) > 0 {
		o.logger.Warn("ignoring unknown plants", "plants", unknown)
	}

	copts := []candidate.Option{candidate.WithLogger(o.logger)}
	if req.MaxGroupSize != 0 {
		copts = append(copts, candidate.WithMaxGroupSize(req.MaxGroupSize))
	}
	if req.DisableExtensions {
		copts = append(copts, candidate.WithoutExtensions())
	}
	ranked, err := candidate.Generate(g, preferred, copts...)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	beds := bed.Partition(ranked)
	res := &Result{Beds: make([]BedView, 0, len(beds)), Unknown: unknown}
	if res.Unknown == nil {
		res.Unknown = []string{}
	}
	for _, b := range beds {
		res.Beds = append(res.Beds, viewOf(b))
	}
	o.logger.Info("plan complete",
		"preferred", len(preferred), "candidates", len(ranked),
		"beds", len(res.Beds), "unknown", len(res.Unknown))

	return res, nil
}

func viewOf(b bed.GardenBed) BedView {
	v := BedView{
		Plants:  make([]PlantView, 0, len(b.Members)),
		Score:   b.Score,
		Effects: make([]EffectView, 0, len(b.Effects)),
	}
	for _, m := range b.Members {
		v.Plants = append(v.Plants, PlantView{Name: m.Plant, Role: string(m.Role)})
	}
	for _, e := range b.Effects {
		v.Effects = append(v.Effects, EffectView{Helper: e.Helper, Helped: e.Helped, Effect: e.Effect})
	}

	return v
}
