package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/rdp/advanced"
	"github.com/osuushi/rdp/dbg"
)

// Print every step of the walk. Accepted spans are green, rejected spans
// yellow; each span carries a readable name so that a narrowed span can be
// matched to the step that produced it.
func tracer(w io.Writer, au aurora.Aurora) func(advanced.Step) {
	return func(step advanced.Step) {
		fmt.Fprintln(w, formatStep(au, step))
	}
}

func formatStep(au aurora.Aurora, step advanced.Step) string {
	next := "done"
	if step.Next != nil {
		next = fmt.Sprintf("%v [%s]", *step.Next, dbg.Name(*step.Next))
	}

	var verdict aurora.Value
	if step.Segment != nil {
		verdict = au.Green("accept")
	} else {
		verdict = au.Yellow("reject")
	}

	detail := "no interior points"
	if step.Farthest >= 0 {
		detail = fmt.Sprintf("farthest=%d dmax=%5.2f", step.Farthest, step.Distance)
	}

	return fmt.Sprintf("%4d %v [%s] %s %v --> %s",
		step.Index, au.Cyan(step.Span), dbg.Name(step.Span), verdict, detail, next)
}
