package prefix

import (
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Env maps variable names to the expressions they stand for. An Env is not
// modified after it is created, so it is safe to share between concurrent
// evaluations.
type Env struct {
	vars map[string]Expr
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	bindopt struct {
		name string
		val  Expr
	}
	bindsopt   map[string]Expr
	constsopt  uint
	nosentinel struct{}
)

func (bindopt) envOption()    {}
func (bindsopt) envOption()   {}
func (constsopt) envOption()  {}
func (nosentinel) envOption() {}

// Bind binds a name to an expression in the environment.
func Bind(name string, val Expr) EnvOption {
	return bindopt{name, val}
}

// Binds binds any number of names in the environment.
func Binds(vars map[string]Expr) EnvOption {
	return bindsopt(vars)
}

// Constants binds pi and e, computed to prec bits and rounded to the nearest
// float64. A precision of 0 means 64.
func Constants(prec uint) EnvOption {
	return constsopt(prec)
}

// WithoutSentinel leaves out the binding of the empty name that every new
// environment otherwise has.
func WithoutSentinel() EnvOption {
	return nosentinel{}
}

// NewEnv creates an environment. Unless WithoutSentinel is given, the empty
// name is bound to Number(0) before any other options are applied.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{vars: make(map[string]Expr, 1)}
	sentinel := true
	for _, opt := range opts {
		if _, ok := opt.(nosentinel); ok {
			sentinel = false
			break
		}
	}
	if sentinel {
		env.vars[""] = Number(0)
	}
	env.apply(opts)
	return &env
}

// Default returns a new environment holding only the sentinel binding.
func Default() *Env {
	return NewEnv()
}

// Clone creates a copy of an environment and applies options to it. env is
// unchanged. WithoutSentinel has no effect on a clone.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{vars: make(map[string]Expr, env.Len()+len(opts))}
	if env != nil {
		for k, v := range env.vars {
			n.vars[k] = v
		}
	}
	n.apply(opts)
	return &n
}

func (env *Env) apply(opts []EnvOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case bindopt:
			env.vars[opt.name] = opt.val
		case bindsopt:
			for k, v := range opt {
				env.vars[k] = v
			}
		case constsopt:
			prec := uint(opt)
			if prec == 0 {
				prec = 64
			}
			pi, _ := bigfloat.Pi(new(big.Float).SetPrec(prec)).Float64()
			one := new(big.Float).SetPrec(prec).SetFloat64(1)
			e, _ := bigfloat.Exp(new(big.Float).SetPrec(prec), one).Float64()
			env.vars["pi"] = Number(pi)
			env.vars["e"] = Number(e)
		case nosentinel:
			// Already done. Do nothing.
		default:
			panic("prefix: unknown option type")
		}
	}
}

// Lookup returns the expression bound to name. If there is no such binding,
// the error is a *NameError.
func (env *Env) Lookup(name string) (Expr, error) {
	if env != nil {
		if x, ok := env.vars[name]; ok {
			return x, nil
		}
	}
	return Expr{}, &NameError{Name: name}
}

// Len returns the number of bindings in env.
func (env *Env) Len() int {
	if env == nil {
		return 0
	}
	return len(env.vars)
}

// Names returns the sorted names bound in env.
func (env *Env) Names() []string {
	if env.Len() == 0 {
		return nil
	}
	names := make([]string, 0, len(env.vars))
	for k := range env.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
