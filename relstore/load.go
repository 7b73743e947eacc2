package relstore

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/companion/benefit"
)

// readerSource names datasets handed over as a plain io.Reader.
const readerSource = "<reader>"

// DefaultSource names the dataset bundled with the module.
const DefaultSource = "companions.csv (bundled)"

//go:embed data/companions.csv
var bundled []byte

// record is one normalized relationship.
type record struct {
	num    int // 1-based data record number
	helper string
	helped string
	effect string
}

// dataset is the format-independent result of parsing a source.
type dataset struct {
	plants  []string // plants registered even without relationships
	records []record
}

// LoadFile loads the dataset at path. The format comes from WithFormat or,
// by default, from the file extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*benefit.Graph, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	format := o.Format
	if format == "" {
		if format, err = DetectFormat(path); err != nil {
			return nil, &LoadError{Source: path, Err: err}
		}
	}
	if format == FormatSQLite {
		return loadSQLiteFile(ctx, path, o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	defer f.Close()

	return load(ctx, path, f, format, o)
}

// LoadReader loads a dataset of the given format from r. SQLite cannot be
// read from a stream; use LoadDB.
func LoadReader(ctx context.Context, r io.Reader, format Format, opts ...Option) (*benefit.Graph, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, &LoadError{Source: readerSource, Err: err}
	}

	return load(ctx, readerSource, r, format, o)
}

// LoadDefault loads the dataset bundled with the module.
func LoadDefault(ctx context.Context, opts ...Option) (*benefit.Graph, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, &LoadError{Source: DefaultSource, Err: err}
	}

	return load(ctx, DefaultSource, bytes.NewReader(bundled), FormatCSV, o)
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func load(ctx context.Context, src string, r io.Reader, format Format, o Options) (*benefit.Graph, error) {
	var (
		ds  dataset
		err error
	)
	switch format {
	case FormatCSV:
		ds, err = readCSV(src, r)
	case FormatJSON:
		ds, err = readJSON(src, r)
	case FormatYAML:
		ds, err = readYAML(src, r)
	case FormatXLSX:
		ds, err = readXLSX(src, r, o.Sheet)
	default:
		err = &LoadError{Source: src, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}
	if err != nil {
		return nil, err
	}

	return build(ctx, src, ds, o)
}

// build feeds ds into a benefit.Builder. Any failure discards the builder,
// so callers never see a partial graph.
func build(ctx context.Context, src string, ds dataset, o Options) (*benefit.Graph, error) {
	current := 0
	b, err := benefit.NewBuilder(
		benefit.WithDuplicatePolicy(o.Policy),
		benefit.WithOnDuplicate(func(old, repl benefit.Edge) {
			o.Logger.Warn("duplicate relationship, keeping last",
				"source", src, "record", current,
				"helper", old.Helper, "helped", old.Helped,
				"old_effect", old.Effect, "new_effect", repl.Effect)
		}),
	)
	if err != nil {
		return nil, &LoadError{Source: src, Err: err}
	}

	for _, p := range ds.plants {
		if err = b.AddPlant(p); err != nil {
			return nil, &LoadError{Source: src, Err: err}
		}
	}
	for _, r := range ds.records {
		if err = ctx.Err(); err != nil {
			return nil, &LoadError{Source: src, Record: r.num, Err: err}
		}
		current = r.num
		if err = b.Add(r.helper, r.helped, r.effect); err != nil {
			return nil, &LoadError{Source: src, Record: r.num, Err: err}
		}
	}

	g := b.Build()
	o.Logger.Info("relationship dataset loaded",
		"source", src, "plants", g.PlantCount(), "relationships", g.EdgeCount())

	return g, nil
}

// rowRecord validates one tabular row: helper, helped[, effect].
func rowRecord(src string, num int, cols []string) (record, error) {
	get := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}
	r := record{num: num, helper: get(0), helped: get(1), effect: get(2)}
	if r.helper == "" {
		return r, &LoadError{Source: src, Record: num, Field: "helper", Err: ErrMissingField}
	}
	if r.helped == "" {
		return r, &LoadError{Source: src, Record: num, Field: "helped", Err: ErrMissingField}
	}

	return r, nil
}

// blank reports whether every cell of a row is empty.
func blank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
