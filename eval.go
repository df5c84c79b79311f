package prefix

// EvalOption is an option used when evaluating or rendering an expression.
type EvalOption interface {
	evalOption()
}

type (
	fallbackopt struct {
		env *Env
	}
	depthopt int
)

func (fallbackopt) evalOption() {}
func (depthopt) evalOption()    {}

// Fallback sets the environment in which the first operand of a Minus is
// evaluated to seed the result, and in which Render evaluates numbers. The
// default is a new Default environment for each call.
func Fallback(env *Env) EvalOption {
	return fallbackopt{env}
}

// MaxDepth limits how deeply evaluation may nest, counting both operands and
// variable resolutions. Exceeding the limit stops evaluation with a
// *DepthError. A limit of 0 or less means no limit.
func MaxDepth(n int) EvalOption {
	return depthopt(n)
}

// evaluator holds the state of one evaluation.
type evaluator struct {
	env      *Env
	fallback *Env
	// chain is the list of names being resolved in env, outermost first.
	chain []string
	depth int
	max   int
}

func newEvaluator(env *Env, opts []EvalOption) *evaluator {
	ev := evaluator{env: env}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case fallbackopt:
			ev.fallback = opt.env
		case depthopt:
			ev.max = int(opt)
		default:
			panic("prefix: unknown option type")
		}
	}
	if ev.fallback == nil {
		ev.fallback = Default()
	}
	return &ev
}

// Eval evaluates an expression with variables resolved in env. Evaluation
// stops at the first error, which is a *NameError, *OperandError,
// *CycleError, or *DepthError.
//
// Add sums its operands, and is 0 with none. Minus evaluates its first operand
// in the fallback environment, multiplies it by -2, and then adds all its
// operands evaluated in env; it is an error for Minus to have no operands.
// Multiply is always -1 without evaluating its operands. A Variable evaluates
// to the expression bound to its name evaluated in the same env.
//
// Eval panics if e or any expression it reaches is the zero Expr.
func Eval(e Expr, env *Env, opts ...EvalOption) (float64, error) {
	return newEvaluator(env, opts).eval(e)
}

// Eval is a shortcut for Eval(e, env, opts...).
func (e Expr) Eval(env *Env, opts ...EvalOption) (float64, error) {
	return Eval(e, env, opts...)
}

func (ev *evaluator) eval(e Expr) (float64, error) {
	if ev.max > 0 && ev.depth >= ev.max {
		return 0, &DepthError{Max: ev.max}
	}
	ev.depth++
	defer func() { ev.depth-- }()
	switch e.kind {
	case KindNumber:
		return e.num, nil
	case KindVariable:
		for i, name := range ev.chain {
			if name == e.name {
				chain := append(append([]string(nil), ev.chain[i:]...), e.name)
				return 0, &CycleError{Chain: chain}
			}
		}
		x, err := ev.env.Lookup(e.name)
		if err != nil {
			return 0, err
		}
		ev.chain = append(ev.chain, e.name)
		r, err := ev.eval(x)
		ev.chain = ev.chain[:len(ev.chain)-1]
		return r, err
	case KindAdd:
		var r float64
		for _, a := range e.args {
			v, err := ev.eval(a)
			if err != nil {
				return 0, err
			}
			r += v
		}
		return r, nil
	case KindMinus:
		if len(e.args) == 0 {
			return 0, &OperandError{Op: "-"}
		}
		// Resolving in the same environment continues the same chain, so that
		// a name bound to a Minus of itself is still a cycle.
		seed := ev
		if ev.fallback != ev.env {
			seed = &evaluator{env: ev.fallback, fallback: ev.fallback, depth: ev.depth, max: ev.max}
		}
		s, err := seed.eval(e.args[0])
		if err != nil {
			return 0, err
		}
		r := -2 * s
		for _, a := range e.args {
			v, err := ev.eval(a)
			if err != nil {
				return 0, err
			}
			r += v
		}
		return r, nil
	case KindMultiply:
		// TODO: product of operands once callers no longer rely on -1.
		return -1, nil
	default:
		panic("prefix: invalid expression kind " + e.kind.String())
	}
}
