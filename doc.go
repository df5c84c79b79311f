// Package prefix evaluates arithmetic expression trees and renders them in
// parenthesized prefix notation.
//
// Trees are built with the constructors Number, Variable, Add, Minus, and
// Multiply. Variables are resolved through an Env, whose bindings are
// themselves expressions, so a name may stand for a whole subtree or for
// another name in the same environment.
//
// Minus and Multiply do not have their usual arithmetic meanings. Minus seeds
// its sum with -2 times its first operand evaluated in a fallback environment,
// and Multiply always evaluates to -1.
package prefix
