package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/prefix"
)

func main() {
	log.SetFlags(0)
	var (
		verb         string
		with         []prefix.EnvOption
		eval, consts bool
		prec         int
	)
	given := func(s string) error {
		nm, vl, err := definition(s)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(vl, 64)
		if err != nil {
			return fmt.Errorf("value of %s: %w", nm, err)
		}
		with = append(with, prefix.Bind(nm, prefix.Number(v)))
		return nil
	}
	alias := func(s string) error {
		nm, to, err := definition(s)
		if err != nil {
			return err
		}
		with = append(with, prefix.Bind(nm, prefix.Variable(to)))
		return nil
	}
	flag.Func("given", "name=value number definition (any number of times)", given)
	flag.Func("alias", "name=other variable definition (any number of times)", alias)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&eval, "eval", false, "print the value of each expression after its rendering")
	flag.BoolVar(&consts, "consts", false, "define pi and e")
	flag.IntVar(&prec, "p", 64, "precision of constants in bits")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if consts {
		// Constants go first so that definitions can shadow them.
		with = append([]prefix.EnvOption{prefix.Constants(uint(prec))}, with...)
	}
	env := prefix.NewEnv(with...)

	var p []prefix.Expr
	if flag.NArg() == 0 {
		p = append(p, demo())
	}
	for _, nm := range flag.Args() {
		x, err := env.Lookup(nm)
		if err != nil {
			log.Fatal(err)
		}
		p = append(p, x)
	}

	verb += "\n"
	for _, a := range p {
		if err := prefix.Fprint(os.Stdout, a); err != nil {
			log.Fatal(err)
		}
		if !eval {
			continue
		}
		r, err := prefix.Eval(a, env)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// definition splits a name=value command-line definition.
func definition(s string) (name, value string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", "", fmt.Errorf(`definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(d[0]), strings.TrimSpace(d[1]), nil
}

// demo is the expression printed when no names are given.
func demo() prefix.Expr {
	return prefix.Add(
		prefix.Number(2),
		prefix.Multiply(
			prefix.Number(2),
			prefix.Minus(prefix.Number(4), prefix.Number(2)),
		),
	)
}
