package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sequences. This is not a
// full (or even correct) svg parser. It finds the first polyline and reads its
// points attribute. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"sine", "spiral", "steps", "zigzag"}

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) != 1 {
		log.Fatalf("Expected one polyline in fixture %q, found %d", name, len(polylines))
	}

	pointStrings := strings.Fields(polylines[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Ten points along the x axis, bumped up at x=2 and down at x=6.
func BumpyLine() []Point {
	points := make([]Point, 10)
	for n := range points {
		points[n] = Point{X: float64(n)}
	}
	points[2].Y = 0.2
	points[6].Y = -0.3
	return points
}
