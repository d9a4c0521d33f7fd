// Ramer–Douglas–Peucker polyline simplification for Go.
//
// This package reduces an ordered, open polyline to a chain of straight
// segments between a subset of its points, such that every dropped point lies
// strictly closer than a threshold to the segment that replaces it. The first
// and last points are always kept, and no new points are introduced.
//
// The advanced package exposes the walk itself, including step tracing and a
// step limit.
package rdp

import "github.com/osuushi/rdp/advanced"

type Point = advanced.Point
type Vector = advanced.Vector
type Segment = advanced.Segment
type Step = advanced.Step

// Options tune a simplification. The zero value other than Threshold is what
// Simplify uses.
type Options struct {
	Threshold float64
	// Give up with ErrStepLimit after this many examined spans. Zero means no
	// limit.
	MaxSteps int
	// Called with every examined span, in order.
	Trace func(Step)
}

var (
	ErrDegenerateVector   = advanced.ErrDegenerateVector
	ErrInsufficientPoints = advanced.ErrInsufficientPoints
	ErrInvalidThreshold   = advanced.ErrInvalidThreshold
	ErrNonFinitePoint     = advanced.ErrNonFinitePoint
	ErrOutOfRange         = advanced.ErrOutOfRange
	ErrStepLimit          = advanced.ErrStepLimit
)

// Simplify points into segments, left to right.
//
// Consecutive segments share an endpoint, the first starts at points[0] and
// the last ends at the final point. Fewer than two points, a non-finite
// threshold or coordinate, or coincident anchors around interior points are
// reported as errors, never as partial output.
func Simplify(points []Point, threshold float64) ([]Segment, error) {
	return SimplifyWithOptions(points, Options{Threshold: threshold})
}

func SimplifyWithOptions(points []Point, opts Options) ([]Segment, error) {
	s := &advanced.Simplifier{
		Threshold: opts.Threshold,
		MaxSteps:  opts.MaxSteps,
		Trace:     opts.Trace,
	}
	return s.Simplify(points)
}

// Perpendicular distance from pt to the line through a and b.
func PointLineDistance(pt, a, b Point) (float64, error) {
	return advanced.PointLineDistance(pt, a, b)
}

// The retained points of a simplification, in order.
func Vertices(segments []Segment) []Point {
	return advanced.Vertices(segments)
}
