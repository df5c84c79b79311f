package prefix

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Render formats an expression in prefix notation, e.g. "(+ 1 (* 2  3 ))".
// Each number is evaluated in the fallback environment and written with a
// space on each side. Operands follow their operator with no separator.
// Variables are not written at all.
func Render(e Expr, opts ...EvalOption) string {
	fb := newEvaluator(nil, opts).fallback
	ev := evaluator{env: fb, fallback: fb}
	var b strings.Builder
	e.render(&b, &ev)
	return b.String()
}

// Fprint writes the rendering of e followed by a newline to w.
func Fprint(w io.Writer, e Expr, opts ...EvalOption) error {
	_, err := io.WriteString(w, Render(e, opts...)+"\n")
	return err
}

func (e Expr) render(b *strings.Builder, ev *evaluator) {
	switch e.kind {
	case KindNumber:
		// Numbers never fail to evaluate.
		v, _ := ev.eval(e)
		b.WriteByte(' ')
		b.WriteString(fmtnum(v))
		b.WriteByte(' ')
	case KindVariable: // do nothing
	case KindAdd:
		e.renderop(b, ev, "(+")
	case KindMinus:
		e.renderop(b, ev, "(-")
	case KindMultiply:
		e.renderop(b, ev, "(*")
	default:
		panic("prefix: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

func (e Expr) renderop(b *strings.Builder, ev *evaluator, open string) {
	b.WriteString(open)
	for _, a := range e.args {
		a.render(b, ev)
	}
	b.WriteByte(')')
}

// fmtnum formats a number as the shortest decimal that reads back to the same
// value, never using an exponent.
func fmtnum(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
