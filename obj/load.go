package obj

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

type options struct {
	logger  *Logger
	verbose bool
}

type Option func(*options)

// WithLogger routes warnings and progress messages to l. A nil l
// silences the loader.
func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// Verbose also reports file names and welded buffer sizes.
func Verbose() Option {
	return func(o *options) { o.verbose = true }
}

func newOptions(opts []Option) *options {
	o := &options{logger: StdLogger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads and welds the mesh at path. When the file cannot be opened
// or read it returns an empty mesh and an error wrapping
// ErrResourceUnavailable; the caller decides whether that is fatal.
func Load(path string, opts ...Option) (*Mesh, error) {
	o := newOptions(opts)
	if o.verbose {
		o.logger.Printf("Loading obj file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		o.logger.Printf("%s: %v", path, err)
		return emptyMesh(), errors.Wrapf(ErrResourceUnavailable, "%v", err)
	}
	defer f.Close()

	m, err := decode(f, o)
	if err != nil {
		return m, errors.Wrap(err, path)
	}
	if o.verbose {
		o.logger.Printf("%s: %d verts, %d indices", path, len(m.Positions), len(m.Indices))
	}
	return m, nil
}

// Decode is Load for an already opened stream.
func Decode(r io.Reader, opts ...Option) (*Mesh, error) {
	return decode(r, newOptions(opts))
}

func decode(r io.Reader, o *options) (*Mesh, error) {
	raw, err := parse(r, o)
	if err != nil {
		if errors.Is(err, ErrResourceUnavailable) {
			return emptyMesh(), err
		}
		return nil, err
	}
	if raw.Skipped > 0 {
		o.logger.Printf("warning: skipped %d unsupported lines", raw.Skipped)
	}
	return Weld(raw)
}
