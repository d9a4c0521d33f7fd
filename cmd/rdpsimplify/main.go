package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/rdp/advanced"
	"github.com/osuushi/rdp/pointio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Simplify a polyline read from a file and write the resulting segments to
// <input>_out and to stdout. Input is one "x,y" point per line, or an SVG file
// whose first polyline is used. Without an input file a small built-in curve
// is simplified instead, which is handy to see the debug trace.
//
//	rdpsimplify [input] [threshold] [debug]

var (
	app = kingpin.New("rdpsimplify", "Simplify a polyline with the Ramer-Douglas-Peucker algorithm.")

	configPath = app.Flag("config", "TOML file with default settings.").Envar("RDP_CONFIG").String()
	noColor    = app.Flag("no-color", "Disable colors in the debug trace.").Bool()

	simplifyCmd  = app.Command("simplify", "Simplify a point file (default command).").Default()
	inputArg     = simplifyCmd.Arg("input", "Point file, x,y per line or .svg. Omit to use the built-in test curve.").String()
	thresholdArg = simplifyCmd.Arg("threshold", "Maximum distance of a dropped point from its segment (default 0.2).").String()
	debugArg     = simplifyCmd.Arg("debug", "1 to print every step of the walk.").String()
	outputFlag   = simplifyCmd.Flag("output", "Output file (default <input>_out, or tmp.out).").Short('o').String()
	formatFlag   = simplifyCmd.Flag("format", "Output format.").Envar("RDP_FORMAT").Enum(pointio.Formats...)
	maxStepsFlag = simplifyCmd.Flag("max-steps", "Give up after this many steps (0 for no limit).").Envar("RDP_MAX_STEPS").Int()
	pngFlag      = simplifyCmd.Flag("png", "Also render the input and the result to this PNG file.").String()
	imgcatFlag   = simplifyCmd.Flag("imgcat", "Print the rendering inline (iTerm).").Bool()
	scaleFlag    = simplifyCmd.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	quietFlag    = simplifyCmd.Flag("quiet", "Do not echo the result to stdout.").Short('q').Bool()
	selftestCmd  = app.Command("selftest", "Print the point-line distance self-check.")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rdpsimplify: ")

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case selftestCmd.FullCommand():
		app.FatalIfError(runSelfTest(os.Stdout), "selftest")
	case simplifyCmd.FullCommand():
		app.FatalIfError(runSimplify(), "")
	}
}

func runSimplify() error {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg = cfg.Merge(Args{
		Input:     *inputArg,
		Threshold: *thresholdArg,
		Debug:     *debugArg,
		Output:    *outputFlag,
		Format:    *formatFlag,
		MaxSteps:  *maxStepsFlag,
	}, log.Printf)
	if err := cfg.Validate(); err != nil {
		return err
	}

	points := pointio.SyntheticCurve()
	if *inputArg != "" {
		log.Printf("reading from file: [%s]", *inputArg)
		points, err = pointio.ReadFile(*inputArg)
		if err != nil {
			return err
		}
	}

	au := aurora.NewAurora(!*noColor)
	simplifier := &advanced.Simplifier{Threshold: cfg.Threshold, MaxSteps: cfg.MaxSteps}
	if cfg.Debug {
		log.Printf("thresh=%5.2f, points=%d", cfg.Threshold, len(points))
		simplifier.Trace = tracer(os.Stderr, au)
	}

	segments, err := simplifier.Simplify(points)
	if err != nil {
		return errors.Wrap(err, "simplifying")
	}

	if err := writeResult(cfg, segments); err != nil {
		return err
	}

	if *pngFlag != "" {
		if err := advanced.SavePNG(*pngFlag, points, segments, *scaleFlag); err != nil {
			return err
		}
	}
	if *imgcatFlag {
		if err := advanced.Imgcat(os.Stdout, points, segments, *scaleFlag); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(cfg Config, segments []advanced.Segment) error {
	log.Printf("writing to [%s]....", cfg.Output)
	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer f.Close()

	writers := []io.Writer{f}
	if !*quietFlag {
		writers = append(writers, os.Stdout)
	}
	if err := pointio.Write(pointio.Format(cfg.Format), segments, writers...); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}

// The three reference distances: 0.50, 0.00 and 0.71.
func runSelfTest(w io.Writer) error {
	cases := []struct{ pt, a, b advanced.Point }{
		{advanced.Point{X: 0, Y: 0.5}, advanced.Point{X: 0, Y: 0}, advanced.Point{X: 1, Y: 0}},
		{advanced.Point{X: 0.5, Y: 0.5}, advanced.Point{X: 0, Y: 0}, advanced.Point{X: 1, Y: 1}},
		{advanced.Point{X: 0, Y: 1}, advanced.Point{X: 0, Y: 0}, advanced.Point{X: 1, Y: 1}},
	}
	for _, c := range cases {
		d, err := advanced.PointLineDistance(c.pt, c.a, c.b)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%5.2f\n", d); err != nil {
			return err
		}
	}
	return nil
}
