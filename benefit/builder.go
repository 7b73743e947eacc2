package benefit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/companion/core"
)

// Builder accumulates relationships before freezing them into a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	g    *core.Graph
	opts Options
}

// NewBuilder returns an empty Builder configured by opts.
//
// Errors:
//   - ErrOptionViolation if any option is invalid.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Builder{g: core.NewGraph(), opts: o}, nil
}

// AddPlant registers a plant that may have no relationships at all, so that
// it is known to the Graph (AllPlants, Has) even without edges.
func (b *Builder) AddPlant(name string) error {
	if name == "" {
		return ErrEmptyPlant
	}

	return b.g.AddVertex(name)
}

// Add records "helper helps helped" with an optional effect description.
//
// Errors:
//   - ErrEmptyPlant if either name is empty.
//   - ErrSelfLoop if helper == helped.
//   - ErrDuplicateEdge under RejectDuplicates for a repeated ordered pair.
func (b *Builder) Add(helper, helped, effect string) error {
	if helper == "" || helped == "" {
		return ErrEmptyPlant
	}
	if helper == helped {
		return fmt.Errorf("%w: %s", ErrSelfLoop, helper)
	}

	var replaced *Edge
	if old, err := b.g.EdgeBetween(helper, helped); err == nil {
		prev := Edge{Helper: helper, Helped: helped, Effect: old.Label}
		if b.opts.Policy == RejectDuplicates {
			return fmt.Errorf("%w: %s", ErrDuplicateEdge, prev)
		}
		if err = b.g.RemoveEdge(old.ID); err != nil {
			return err
		}
		replaced = &prev
	} else if !errors.Is(err, core.ErrEdgeNotFound) {
		return err
	}

	if _, err := b.g.AddEdge(helper, helped, core.WithLabel(effect)); err != nil {
		return err
	}
	if replaced != nil {
		b.opts.OnDuplicate(*replaced, Edge{Helper: helper, Helped: helped, Effect: effect})
	}

	return nil
}

// Build freezes the current relationships into an immutable Graph.
// The Builder stays usable; later Adds do not affect graphs already built.
func (b *Builder) Build() *Graph {
	return &Graph{g: b.g.Clone()}
}
