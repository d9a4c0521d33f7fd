package advanced

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ramer–Douglas–Peucker simplification of an open polyline.
//
// The walk always works on one span [n1, n2] at a time. The candidate segment
// joins the span's endpoints. If every interior point lies strictly closer to
// it than the threshold, the segment is emitted and the walk advances to
// [n2, last]. Otherwise the span is narrowed to [n1, farthest], where farthest
// is the first interior point at the maximum distance, and the left part is
// tried again. The right part is picked up later by the advance after an
// acceptance, so segments come out left to right and share endpoints.
//
// The walk is driven by a SpanStack instead of recursion, so input length is
// not bounded by the goroutine stack.

type Simplifier struct {
	// Interior points must lie strictly closer than this to their segment.
	// Values <= 0 keep every point.
	Threshold float64
	// Maximum number of spans examined before giving up with ErrStepLimit.
	// Zero means no limit; the walk always terminates in O(n²) steps anyway.
	MaxSteps int
	// Called after every examined span, if set.
	Trace func(Step)
}

// One examined span of the walk.
type Step struct {
	Index int
	Span  Span
	// Index into the point sequence of the farthest interior point, or -1 if
	// the span has no interior points.
	Farthest int
	Distance float64
	// The emitted segment. Nil when the span was rejected.
	Segment *Segment
	// The span examined next. Nil when the walk is complete.
	Next *Span
}

func NewSimplifier(threshold float64) *Simplifier {
	return &Simplifier{Threshold: threshold}
}

func (s *Simplifier) Simplify(points []Point) (result []Segment, err error) {
	defer func() {
		recoveredErr := HandleSimplifyPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if err := s.validate(points); err != nil {
		return nil, err
	}
	return s.walk(points), nil
}

func (s *Simplifier) validate(points []Point) error {
	if math.IsNaN(s.Threshold) || math.IsInf(s.Threshold, 0) {
		return errors.Wrapf(ErrInvalidThreshold, "got %v", s.Threshold)
	}
	if len(points) < 2 {
		return errors.Wrapf(ErrInsufficientPoints, "got %d", len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrNonFinitePoint, "point %d is (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}

func (s *Simplifier) walk(points []Point) []Segment {
	last := len(points) - 1
	var (
		result    []Segment
		distances []float64
		stack     SpanStack
	)
	stack.Push(Span{0, last})

	for step := 0; ; step++ {
		span, ok := stack.Pop()
		if !ok {
			return result
		}
		if s.MaxSteps > 0 && step >= s.MaxSteps {
			fatal(errors.Wrapf(ErrStepLimit, "%d steps, next span %v", s.MaxSteps, span))
		}

		record := Step{Index: step, Span: span, Farthest: -1}
		if span.Interior() > 0 {
			distances = scanSpan(points, span, distances[:0])
			imax := floats.MaxIdx(distances)
			record.Farthest = span.From + 1 + imax
			record.Distance = distances[imax]
		}

		// Spans with no interior point are accepted whatever the threshold;
		// otherwise a threshold <= 0 would narrow a two point span to itself.
		if record.Farthest < 0 || record.Distance < s.Threshold {
			segment := Segment{
				P1:   points[span.From],
				P2:   points[span.To],
				From: span.From,
				To:   span.To,
			}
			result = append(result, segment)
			record.Segment = &segment
			if span.To < last {
				stack.Push(Span{span.To, last})
			}
		} else {
			narrowed := Span{span.From, record.Farthest}
			if narrowed.To >= span.To {
				fatalf("span %v did not shrink", span)
			}
			stack.Push(narrowed)
		}

		if s.Trace != nil {
			if next, ok := stack.Peek(); ok {
				record.Next = &next
			}
			s.Trace(record)
		}
	}
}

// Fill distances with the offset of every interior point of span from the
// line through its endpoints.
func scanSpan(points []Point, span Span, distances []float64) []float64 {
	normal, err := lineNormal(points[span.From], points[span.To])
	if err != nil {
		fatal(errors.Wrapf(err, "span %v", span))
	}
	for n := span.From + 1; n < span.To; n++ {
		d := offset(normal, points[span.From], points[n])
		if math.IsInf(d, 0) || math.IsNaN(d) {
			fatal(errors.Wrapf(ErrOutOfRange, "span %v, point %d", span, n))
		}
		distances = append(distances, d)
	}
	return distances
}
