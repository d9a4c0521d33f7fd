package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Perpendicular distance from pt to the infinite line through lp1 and lp2.
// Projecting onto the unit normal of the line gives the offset directly, with
// no division per point. Fails with ErrDegenerateVector when the anchors
// coincide, since they do not define a line, and with ErrOutOfRange when the
// coordinates are too far apart to measure in float64.
func PointLineDistance(pt, lp1, lp2 Point) (float64, error) {
	normal, err := lineNormal(lp1, lp2)
	if err != nil {
		return 0, err
	}
	d := offset(normal, lp1, pt)
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, errors.Wrapf(ErrOutOfRange, "point (%g, %g)", pt.X, pt.Y)
	}
	return d, nil
}

func lineNormal(lp1, lp2 Point) (Vector, error) {
	dir, err := VectorBetween(lp1, lp2, true)
	if err != nil {
		return Vector{}, err
	}
	return dir.Normal(), nil
}

// Distance along a unit normal from the line anchored at origin. The
// simplifier computes the normal once per span and calls this for every
// interior point.
func offset(normal Vector, origin, pt Point) float64 {
	return math.Abs(normal.Dot(Vector{pt.X - origin.X, pt.Y - origin.Y}))
}
