package prefix

import (
	"sort"
)

// Expr is an expression tree. The zero Expr is invalid. Expr values are
// immutable; constructors copy their operands.
type Expr struct {
	kind Kind

	num  float64
	name string
	args []Expr
}

// Kind identifies the variant of an Expr.
type Kind int8

const (
	KindNone Kind = iota

	KindNumber   // num
	KindVariable // lookup(name)
	KindAdd      // sum of args
	KindMinus    // -2*args[0] in fallback, plus sum of args
	KindMultiply // always -1
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind -output=kind_string.go
//go:generate go mod tidy

// Number creates a literal.
func Number(v float64) Expr {
	return Expr{kind: KindNumber, num: v}
}

// Variable creates a reference to a name, resolved through an Env when
// evaluated.
func Variable(name string) Expr {
	return Expr{kind: KindVariable, name: name}
}

// Add creates the sum of any number of operands.
func Add(args ...Expr) Expr {
	return Expr{kind: KindAdd, args: clone(args)}
}

// Minus creates a difference node. It needs at least one operand to be
// evaluated.
func Minus(args ...Expr) Expr {
	return Expr{kind: KindMinus, args: clone(args)}
}

// Multiply creates a product node.
func Multiply(args ...Expr) Expr {
	return Expr{kind: KindMultiply, args: clone(args)}
}

func clone(args []Expr) []Expr {
	if len(args) == 0 {
		return nil
	}
	return append([]Expr(nil), args...)
}

// Kind returns the variant of e.
func (e Expr) Kind() Kind {
	return e.kind
}

// Value returns the literal value of a Number. It is 0 for other kinds.
func (e Expr) Value() float64 {
	return e.num
}

// Name returns the name of a Variable. It is empty for other kinds.
func (e Expr) Name() string {
	return e.name
}

// Len returns the number of operands of e.
func (e Expr) Len() int {
	return len(e.args)
}

// Args returns a copy of the operands of e.
func (e Expr) Args() []Expr {
	return clone(e.args)
}

// Vars returns a sorted list of the variable names used in e.
func (e Expr) Vars() []string {
	seen := make(map[string]bool)
	e.vars(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (e Expr) vars(seen map[string]bool) {
	switch e.kind {
	case KindNumber: // do nothing
	case KindVariable:
		seen[e.name] = true
	case KindAdd, KindMinus, KindMultiply:
		for _, a := range e.args {
			a.vars(seen)
		}
	default:
		panic("prefix: invalid expression kind " + e.kind.String())
	}
}

// String returns the prefix notation rendering of e, as by Render with the
// default fallback environment.
func (e Expr) String() string {
	return Render(e)
}
