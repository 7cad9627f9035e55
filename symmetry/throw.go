package symmetry

import "github.com/pkg/errors"

// Violated preconditions are programming errors deep inside index arithmetic,
// and threading them back out through every helper would bury the geometry.
// Instead, we panic with a *PreconditionError, and the public API recovers to
// convert it to an error.

var (
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrWrongParity    = errors.New("operation not defined for this vertex count parity")
	ErrDegenerateLine = errors.New("line needs two distinct points")
)

type PreconditionError struct {
	err error
}

func (e *PreconditionError) Error() string {
	return e.err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.err
}

func (e *PreconditionError) Cause() error {
	return errors.Cause(e.err)
}

// Panic with a PreconditionError wrapping the given sentinel.
func fatalf(sentinel error, format string, args ...interface{}) {
	panic(&PreconditionError{errors.Wrapf(sentinel, format, args...)})
}

// Convert a recovered PreconditionError into an error. Any other panic is
// re-raised, since it means something is actually broken.
func HandleSymmetryPanicRecover(r interface{}) error {
	if r != nil {
		if preconditionError, ok := r.(*PreconditionError); ok {
			return preconditionError
		}
		panic(r)
	}
	return nil
}
