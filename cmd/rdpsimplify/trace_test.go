package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/rdp/advanced"
	"github.com/osuushi/rdp/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStep(t *testing.T) {
	au := aurora.NewAurora(false)
	next := advanced.Span{From: 0, To: 6}

	rejected := formatStep(au, advanced.Step{
		Index:    0,
		Span:     advanced.Span{From: 0, To: 9},
		Farthest: 6,
		Distance: 0.3,
		Next:     &next,
	})
	assert.Contains(t, rejected, "(0, 9)")
	assert.Contains(t, rejected, "reject")
	assert.Contains(t, rejected, "farthest=6 dmax= 0.30")
	assert.Contains(t, rejected, "--> (0, 6) ["+dbg.Name(next)+"]")

	segment := advanced.Segment{From: 6, To: 9}
	accepted := formatStep(au, advanced.Step{
		Index:    5,
		Span:     advanced.Span{From: 6, To: 9},
		Farthest: 7,
		Segment:  &segment,
	})
	assert.Contains(t, accepted, "accept")
	assert.True(t, strings.HasSuffix(accepted, "--> done"))

	pair := formatStep(au, advanced.Step{Span: advanced.Span{From: 1, To: 2}, Farthest: -1, Segment: &segment})
	assert.Contains(t, pair, "no interior points")
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	s := &advanced.Simplifier{Threshold: 0.2, Trace: tracer(&buf, aurora.NewAurora(false))}
	_, err := s.Simplify([]advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0.2}, {X: 3, Y: 0}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.NotEmpty(t, lines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "--> done"))
	// The same span gets the same name wherever it appears.
	spanName := dbg.Name(advanced.Span{From: 0, To: 3})
	assert.Contains(t, lines[0], spanName)
}

func TestRunSelfTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSelfTest(&buf))
	assert.Equal(t, " 0.50\n 0.00\n 0.71\n", buf.String())
}
