package obj

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrResourceUnavailable is returned together with an empty mesh when
	// the input cannot be opened or read.
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrUnsupportedPolygon  = errors.New("unsupported polygon")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

// LineError attaches the position of a bad record to one of the errors above.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Cause lets errors.Cause walk down to the sentinel.
func (e *LineError) Cause() error { return e.Err }
