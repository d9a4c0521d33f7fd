package advanced

import "github.com/pkg/errors"

var (
	ErrDegenerateVector   = errors.New("degenerate vector: anchor points coincide")
	ErrInsufficientPoints = errors.New("at least two points are required")
	ErrInvalidThreshold   = errors.New("threshold must be a finite number")
	ErrNonFinitePoint     = errors.New("point coordinates must be finite")
	ErrOutOfRange         = errors.New("coordinates too far apart to measure")
	ErrStepLimit          = errors.New("step limit exceeded")
)

// The distance scan runs once per interior point of every span. Rather than
// return an error from each of those calls, the scan panics with a
// simplifyPanic and the public entry points recover it into an error.

type simplifyPanic struct {
	err error
}

// Panic with an error that HandleSimplifyPanicRecover will turn back into an
// error.
func fatal(err error) {
	panic(simplifyPanic{err})
}

func fatalf(format string, args ...interface{}) {
	fatal(errors.Errorf(format, args...))
}

// Convert a recovered value into an error. Only panics raised by fatal are
// converted; anything else is a genuine bug and is re-panicked.
func HandleSimplifyPanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(simplifyPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}
