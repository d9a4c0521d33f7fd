package advanced

import "fmt"

type Point struct {
	X float64
	Y float64
}

// A displacement between two points. Vectors share the representation of
// points but are never used as positions.
type Vector struct {
	X float64
	Y float64
}

// Note that segment endpoints are copies of the input points. Nothing produced
// by the simplifier aliases the caller's slice, so the input may be reused or
// modified once Simplify returns.
type Segment struct {
	P1, P2 Point
	// Inclusive indices of P1 and P2 in the simplified point sequence.
	From, To int
}

// An inclusive index range [From, To] into the point sequence being
// simplified.
type Span struct {
	From, To int
}

type SpanStack []Span

func (s Segment) String() string {
	return fmt.Sprintf(" Line: %7.2f, %7.2f  -- %7.2f, %7.2f", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.From, s.To)
}
