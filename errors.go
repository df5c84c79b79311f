package prefix

import (
	"strconv"
	"strings"
)

// NameError is an error from a lookup for a variable that is missing from the
// evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// OperandError is an error indicating an operation evaluated without the
// operands it requires.
type OperandError struct {
	// Op is the symbol of the operation, as rendered.
	Op string
}

func (err *OperandError) Error() string {
	return "no operands for " + strconv.Quote(err.Op)
}

// CycleError is an error indicating a variable whose resolution leads back to
// itself.
type CycleError struct {
	// Chain is the sequence of names resolved, starting and ending with the
	// repeated name.
	Chain []string
}

func (err *CycleError) Error() string {
	var b strings.Builder
	b.WriteString("cyclic binding: ")
	for i, name := range err.Chain {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(strconv.Quote(name))
	}
	return b.String()
}

// DepthError is an error indicating an evaluation that nested deeper than the
// limit set with MaxDepth.
type DepthError struct {
	// Max is the limit that was exceeded.
	Max int
}

func (err *DepthError) Error() string {
	return "evaluation deeper than " + strconv.Itoa(err.Max) + " levels"
}

var (
	_ error = (*NameError)(nil)
	_ error = (*OperandError)(nil)
	_ error = (*CycleError)(nil)
	_ error = (*DepthError)(nil)
)
