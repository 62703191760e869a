package main

import (
	"io"

	"github.com/ttacon/chalk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/lineclip"
)

// reporter prints clip outcomes, one line per segment.
type reporter struct {
	w     io.Writer
	p     *message.Printer
	color bool
}

func newReporter(w io.Writer, lang language.Tag, color bool) *reporter {
	return &reporter{w: w, p: message.NewPrinter(lang), color: color}
}

func (r *reporter) paint(c chalk.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Color(s)
}

func (r *reporter) point(p lineclip.Point) string {
	return r.p.Sprintf("(%v, %v)", p.X, p.Y)
}

func (r *reporter) segment(s lineclip.Segment) string {
	return r.point(s.P1) + " -> " + r.point(s.P2)
}

func (r *reporter) window(w lineclip.Window) {
	r.p.Fprintf(r.w, "window %s\n", r.segment(lineclip.Seg(w.XMin, w.YMin, w.XMax, w.YMax)))
}

// result prints the outcome of clipping segment number i (1-based).
func (r *reporter) result(i int, in lineclip.Segment, res lineclip.Result, err error) {
	prefix := r.p.Sprintf("#%d %s: ", i, r.segment(in))
	switch {
	case err != nil:
		r.p.Fprintf(r.w, "%s%s %v\n", prefix, r.paint(chalk.Yellow, "error"), err)
	case res.IsAccepted():
		seg, _ := res.Segment()
		r.p.Fprintf(r.w, "%s%s %s\n", prefix, r.paint(chalk.Green, "accepted"), r.segment(seg))
	default:
		r.p.Fprintf(r.w, "%s%s\n", prefix, r.paint(chalk.Red, "rejected"))
	}
}

func (r *reporter) step(s lineclip.Step) {
	r.p.Fprintf(r.w, "    step %d: p%d %s -> %s on %v edge\n",
		s.Index, s.Endpoint, r.point(s.From), r.point(s.To), s.Boundary)
}
