// Reading and writing point sequences and simplified segments.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/rdp/advanced"
	"github.com/pkg/errors"
)

var ErrMalformedRecord = errors.New("malformed point record")

// A line of input that does not hold a point.
type RecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Read one "x,y" point per line. Blank lines are skipped; anything else that
// isn't exactly two floats separated by a comma fails with a *RecordError.
func ReadCSV(r io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		point, reason := parsePair(line, ",")
		if reason != "" {
			return nil, &RecordError{Line: lineNumber, Text: line, Reason: reason}
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read the points of the first <polyline> in an SVG document, falling back to
// the first <polygon>. A polygon is read as an open path; its closing edge is
// not added.
func ReadSVG(r io.Reader) ([]advanced.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var elements []*svgparser.Element
	for _, name := range []string{"polyline", "polygon"} {
		if elements = root.FindAll(name); len(elements) > 0 {
			break
		}
	}
	if len(elements) == 0 {
		return nil, errors.New("no polyline or polygon element found")
	}

	return parsePointsAttribute(elements[0].Attributes["points"])
}

// Read a point file, choosing the format from the extension.
func ReadFile(path string) ([]advanced.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening point file")
	}
	defer f.Close()

	var points []advanced.Point
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		points, err = ReadSVG(f)
	} else {
		points, err = ReadCSV(f)
	}
	return points, errors.Wrapf(err, "reading %s", path)
}

// SVG points are "x,y" pairs separated by whitespace, e.g. "0,0 1,0.5 2,0".
func parsePointsAttribute(attribute string) ([]advanced.Point, error) {
	fields := strings.Fields(attribute)
	points := make([]advanced.Point, 0, len(fields))
	for i, field := range fields {
		point, reason := parsePair(field, ",")
		if reason != "" {
			return nil, &RecordError{Line: i + 1, Text: field, Reason: reason}
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePair(text, separator string) (advanced.Point, string) {
	parts := strings.Split(text, separator)
	if len(parts) != 2 {
		return advanced.Point{}, fmt.Sprintf("expected 2 fields, found %d", len(parts))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return advanced.Point{}, fmt.Sprintf("invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return advanced.Point{}, fmt.Sprintf("invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, ""
}

// The curve used when no input is given: ten points along the x axis with
// two bumps, at x=2 (up 0.2) and x=6 (down 0.3).
func SyntheticCurve() []advanced.Point {
	points := make([]advanced.Point, 10)
	for n := range points {
		points[n] = advanced.Point{X: float64(n)}
	}
	points[2].Y = 0.2
	points[6].Y = -0.3
	return points
}
