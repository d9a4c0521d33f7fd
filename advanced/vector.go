package advanced

import (
	"math"

	"github.com/pkg/errors"
)

func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v *Vector) Scale(factor float64) {
	v.X *= factor
	v.Y *= factor
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// The vector rotated a quarter turn counterclockwise.
func (v Vector) Normal() Vector {
	return Vector{-v.Y, v.X}
}

// Get the vector from p1 to p2, optionally scaled to unit length. A unit
// vector between coincident points does not exist, so that case returns
// ErrDegenerateVector rather than a vector full of NaNs. Points so far apart
// that their difference overflows return ErrOutOfRange.
func VectorBetween(p1, p2 Point, normalize bool) (Vector, error) {
	v := Vector{p2.X - p1.X, p2.Y - p1.Y}
	if !normalize {
		return v, nil
	}
	length := v.Norm()
	if length == 0 {
		return Vector{}, errors.Wrapf(ErrDegenerateVector, "from (%g, %g) to (%g, %g)", p1.X, p1.Y, p2.X, p2.Y)
	}
	if math.IsInf(length, 0) {
		return Vector{}, errors.Wrapf(ErrOutOfRange, "from (%g, %g) to (%g, %g)", p1.X, p1.Y, p2.X, p2.Y)
	}
	// Divide rather than scale by 1/length: the reciprocal of a subnormal
	// length is +Inf.
	v = Vector{v.X / length, v.Y / length}
	if !v.IsFinite() {
		return Vector{}, errors.Wrapf(ErrOutOfRange, "from (%g, %g) to (%g, %g)", p1.X, p1.Y, p2.X, p2.Y)
	}
	return v, nil
}

func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
