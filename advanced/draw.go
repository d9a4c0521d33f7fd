package advanced

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the curve so that points on the bounding box stay visible
const drawPadding = 20

// Draw the input polyline and its simplification. The original curve is
// drawn thin and grey with a dot per point, the segments thick and cyan on
// top, with their endpoints highlighted. The y axis points up.
func Render(points []Point, segments []Segment, scale float64) (*gg.Context, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrInsufficientPoints, "nothing to draw")
	}
	if scale <= 0 {
		return nil, errors.Errorf("invalid scale %v", scale)
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)

	// Points are transformed by hand rather than through c.Scale, so that line
	// widths and dot radii stay in pixels.
	project := func(p Point) (float64, float64) {
		return scale * (p.X - minX), scale * (p.Y - minY)
	}

	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	c.MoveTo(project(points[0]))
	for _, p := range points[1:] {
		c.LineTo(project(p))
	}
	c.Stroke()
	for _, p := range points {
		x, y := project(p)
		c.DrawCircle(x, y, 2)
	}
	c.Fill()

	c.SetLineWidth(3)
	c.SetRGB(0, 1, 1)
	for _, s := range segments {
		c.MoveTo(project(s.P1))
		c.LineTo(project(s.P2))
	}
	c.Stroke()
	c.SetRGB(1, 1, 0)
	for _, p := range Vertices(segments) {
		x, y := project(p)
		c.DrawCircle(x, y, 4)
	}
	c.Fill()

	return c, nil
}

// Render to a PNG file.
func SavePNG(path string, points []Point, segments []Segment, scale float64) error {
	c, err := Render(points, segments, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Render and print inline to a terminal that speaks the iTerm image protocol.
func Imgcat(w io.Writer, points []Point, segments []Segment, scale float64) error {
	f, err := os.CreateTemp("", "rdp-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SavePNG(path, points, segments, scale); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing image")
}
