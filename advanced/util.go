package advanced

import "math"

const Tolerance = 1e-9

// Float comparisons in tests and fixtures go through this. The simplifier
// itself compares distances exactly; a point at exactly the threshold must
// reject.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (s Span) Interior() int {
	if s.To-s.From < 1 {
		return 0
	}
	return s.To - s.From - 1
}

func (s *SpanStack) Push(span Span) {
	*s = append(*s, span)
}

// Pop returns false when the stack is empty.
func (s *SpanStack) Pop() (Span, bool) {
	if len(*s) == 0 {
		return Span{}, false
	}
	span := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return span, true
}

func (s *SpanStack) Peek() (Span, bool) {
	if len(*s) == 0 {
		return Span{}, false
	}
	return (*s)[len(*s)-1], true
}

func (s *SpanStack) Empty() bool {
	return len(*s) == 0
}

// Vertices returns the retained points of a simplification: the first
// endpoint of every segment followed by the last endpoint of the final one.
func Vertices(segments []Segment) []Point {
	if len(segments) == 0 {
		return nil
	}
	points := make([]Point, 0, len(segments)+1)
	for _, s := range segments {
		points = append(points, s.P1)
	}
	return append(points, segments[len(segments)-1].P2)
}

func (s Segment) Length() float64 {
	return Vector{s.P2.X - s.P1.X, s.P2.Y - s.P1.Y}.Norm()
}
