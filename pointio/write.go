package pointio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osuushi/rdp/advanced"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-polyline"
)

type Format string

const (
	FormatText     Format = "text"
	FormatGeoJSON  Format = "geojson"
	FormatPolyline Format = "polyline"
)

var Formats = []string{string(FormatText), string(FormatGeoJSON), string(FormatPolyline)}

// Write segments in the given format. Several writers may be passed, e.g. a
// file and stdout; each receives the same bytes.
func Write(format Format, segments []advanced.Segment, writers ...io.Writer) error {
	w := io.MultiWriter(writers...)
	switch format {
	case FormatText, "":
		return WriteText(w, segments)
	case FormatGeoJSON:
		return WriteGeoJSON(w, segments)
	case FormatPolyline:
		return WritePolyline(w, segments)
	}
	return errors.Errorf("unknown output format %q", format)
}

// One " Line: x1, y1  -- x2, y2" line per segment.
func WriteText(w io.Writer, segments []advanced.Segment) error {
	for _, s := range segments {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return errors.Wrap(err, "writing segments")
		}
	}
	return nil
}

// A single GeoJSON Feature holding a LineString through the retained points.
func WriteGeoJSON(w io.Writer, segments []advanced.Segment) error {
	feature := geojson.NewFeature(LineString(segments))
	feature.Properties["segments"] = len(segments)

	data, err := json.Marshal(feature)
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return errors.Wrap(err, "writing geojson")
	}
	return nil
}

// Google encoded polyline of the retained points. The encoding expects
// (latitude, longitude) pairs, so y comes first. Coordinates are rounded to
// five decimal places.
func WritePolyline(w io.Writer, segments []advanced.Segment) error {
	vertices := advanced.Vertices(segments)
	coords := make([][]float64, len(vertices))
	for i, p := range vertices {
		coords[i] = []float64{p.Y, p.X}
	}
	if _, err := fmt.Fprintln(w, string(polyline.EncodeCoords(coords))); err != nil {
		return errors.Wrap(err, "writing polyline")
	}
	return nil
}

func LineString(segments []advanced.Segment) orb.LineString {
	vertices := advanced.Vertices(segments)
	ls := make(orb.LineString, len(vertices))
	for i, p := range vertices {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}
