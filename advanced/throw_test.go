package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Run fn the way Simplifier.Simplify does, converting fatal panics to errors.
func recoverSimplify(fn func()) (err error) {
	defer func() {
		err = HandleSimplifyPanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandleSimplifyPanicRecover(t *testing.T) {
	t.Run("fatal with a sentinel", func(t *testing.T) {
		err := recoverSimplify(func() { fatal(ErrStepLimit) })
		assert.Equal(t, ErrStepLimit, err)
	})

	t.Run("fatalf", func(t *testing.T) {
		err := recoverSimplify(func() { fatalf("span %v did not shrink", Span{2, 6}) })
		assert.EqualError(t, err, "span (2, 6) did not shrink")
	})

	t.Run("panic with a sentinel is not converted", func(t *testing.T) {
		// Only values raised through fatal count; a bare error is a bug.
		assert.PanicsWithValue(t, ErrStepLimit, func() {
			recoverSimplify(func() { panic(ErrStepLimit) })
		})
	})

	t.Run("no panic", func(t *testing.T) {
		assert.NoError(t, recoverSimplify(func() {}))
	})
}

func TestHandleSimplifyPanicRecover_RuntimeErrorsStayPanics(t *testing.T) {
	// A runtime error is an error value too, but it is a bug, not a failed
	// simplification.
	assert.Panics(t, func() {
		defer func() {
			HandleSimplifyPanicRecover(recover())
		}()
		var points []Point
		_ = points[3]
	})
}

func TestFatalKeepsCause(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleSimplifyPanicRecover(recover())
		}()
		fatal(errors.Wrap(ErrDegenerateVector, "span (1, 5)"))
		return nil
	}()
	assert.ErrorIs(t, err, ErrDegenerateVector)
	assert.Equal(t, ErrDegenerateVector, errors.Cause(err))
}
