package loader

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by Load and Parse.
//
// Every failure wraps ErrLoad, so callers that only need to know "the
// graph is unusable" can test errors.Is(err, ErrLoad); the narrower
// sentinels tell why.
var (
	// ErrLoad is the umbrella for every loader failure.
	ErrLoad = errors.New("loader: cannot load graph")

	// ErrOpen indicates the resource is missing or unreadable.
	ErrOpen = errors.New("loader: cannot open resource")

	// ErrSyntax indicates the CSV itself is malformed (e.g. a bare quote).
	ErrSyntax = errors.New("loader: malformed csv")

	// ErrFieldCount indicates a record without exactly three fields.
	ErrFieldCount = errors.New("loader: record must have 3 fields")

	// ErrBadCost indicates a cost that is not a non-negative integer.
	ErrBadCost = errors.New("loader: cost must be a non-negative integer")

	// ErrEmptyLabel indicates a record with an empty from or to label.
	ErrEmptyLabel = errors.New("loader: empty station label")
)

// Option configures a Load or Parse call.
type Option func(*Options)

// Options holds loader settings.
//
// Directed – store each record from→to only (default false: mirrored).
// Comment  – lines starting with this rune are skipped (default '#'; 0 disables).
// Logger   – receives one debug record per successful load (default: discard).
type Options struct {
	Directed bool
	Comment  rune
	Logger   *slog.Logger
}

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Directed: false,
		Comment:  '#',
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDirected loads every record as a one-way edge.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithComment sets the comment rune; pass 0 to treat every line as data.
func WithComment(r rune) Option {
	return func(o *Options) { o.Comment = r }
}

// WithLogger routes load statistics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
