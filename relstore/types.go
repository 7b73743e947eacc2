package relstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/katalvlaran/companion/benefit"
)

// Sentinel errors; every one reaches callers wrapped in a *LoadError.
var (
	// ErrLoad matches every *LoadError via errors.Is.
	ErrLoad = errors.New("relstore: load failed")

	// ErrUnreadable indicates the source could not be opened or decoded.
	ErrUnreadable = errors.New("relstore: source unreadable")

	// ErrMissingField indicates a record lacks a required identifier.
	ErrMissingField = errors.New("relstore: missing required field")

	// ErrUnknownCode indicates a catalog companion code matches no plant.
	ErrUnknownCode = errors.New("relstore: unknown companion code")

	// ErrDuplicateCode indicates two catalog plants share a code.
	ErrDuplicateCode = errors.New("relstore: duplicate plant code")

	// ErrUnsupportedFormat indicates an unknown format or file extension.
	ErrUnsupportedFormat = errors.New("relstore: unsupported format")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relstore: invalid option supplied")
)

// LoadError describes why a dataset could not be loaded.
type LoadError struct {
	// Source names the dataset (file path or "<reader>").
	Source string

	// Record is the 1-based record number (data rows, header excluded);
	// 0 when the failure is not tied to a record.
	Record int

	// Field names the offending column or key, if known.
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("relstore: load ")
	b.WriteString(e.Source)
	if e.Record > 0 {
		fmt.Fprintf(&b, " record %d", e.Record)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	b.WriteString(": ")
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("unknown error")
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoad) true for every *LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Format identifies a dataset encoding.
type Format string

// Supported formats.
const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// ParseFormat maps a configuration name to a Format. The comparison is
// case-insensitive; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatYAML, FormatXLSX, FormatSQLite:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DetectFormat picks a Format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: cannot detect format of %q", ErrUnsupportedFormat, path)
	}
}

// DefaultTable is the SQLite table read by default.
const DefaultTable = "relationships"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option configures loading via functional arguments.
type Option func(*Options)

// Options holds loader configuration.
type Options struct {
	// Policy is passed to benefit.WithDuplicatePolicy.
	Policy benefit.DuplicatePolicy

	// Logger receives load diagnostics.
	Logger *slog.Logger

	// Sheet selects the XLSX sheet; "" means the first sheet.
	Sheet string

	// Table selects the SQLite table.
	Table string

	// Format overrides extension-based detection in LoadFile.
	Format Format

	err error
}

// DefaultOptions returns LastWriteWins, a discard logger, the first sheet
// and DefaultTable.
func DefaultOptions() Options {
	return Options{
		Policy: benefit.LastWriteWins,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Table:  DefaultTable,
	}
}

// WithDuplicatePolicy selects how repeated (helper, helped) pairs are handled.
func WithDuplicatePolicy(p benefit.DuplicatePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSheet selects the XLSX sheet by name.
func WithSheet(name string) Option {
	return func(o *Options) { o.Sheet = name }
}

// WithTable selects the SQLite table. The name must be a plain identifier.
func WithTable(name string) Option {
	return func(o *Options) {
		if !identRe.MatchString(name) {
			o.err = fmt.Errorf("%w: table name %q is not an identifier", ErrOptionViolation, name)
			return
		}
		o.Table = name
	}
}

// WithFormat forces the format used by LoadFile.
func WithFormat(f Format) Option {
	return func(o *Options) {
		if _, err := ParseFormat(string(f)); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Format = f
	}
}
