// Package church provides a library of named lambda terms: the classic
// combinators, Church booleans, naturals, pairs, lists, trees, signed
// integers, and a couple of Y-based algorithms. The package holds values
// only; all evaluation lives in pkg/lambda.
package church

import "github.com/vic/lambdared/pkg/lambda"

// Local shorthand for the term builders.
func v(name string) lambda.Term { return lambda.V(name) }

func lam(name string, body lambda.Term) lambda.Term { return lambda.Lam(name, body) }

func ap(f lambda.Term, args ...lambda.Term) lambda.Term { return lambda.Ap(f, args...) }

// I combinator: identity.
var I = lam("x", v("x"))

// K combinator: constant.
var K = lam("x", lam("y", v("x")))

// S combinator. SK combinatory calculus is Turing complete; S K x = I.
var S = lam("x", lam("y", lam("z",
	ap(v("x"), v("z"), ap(v("y"), v("z"))))))

// B combinator: composition.
var B = lam("x", lam("y", lam("z",
	ap(v("x"), ap(v("y"), v("z"))))))

// C combinator: argument swap.
var C = lam("x", lam("y", lam("z",
	ap(v("x"), v("z"), v("y")))))

// W combinator: argument duplication.
var W = lam("x", lam("y",
	ap(v("x"), v("y"), v("y"))))

// U combinator: self-application.
var U = lam("x", ap(v("x"), v("x")))

// Y combinator: fixed point.
var Y = lam("g", ap(
	lam("x", ap(v("g"), ap(v("x"), v("x")))),
	lam("x", ap(v("g"), ap(v("x"), v("x"))))))

// Iota combinator, Turing complete by itself:
// IOTA IOTA = I, IOTA (IOTA (IOTA IOTA)) = K.
var Iota = lam("f", ap(v("f"), S, K))

// Omega: the minimal term without a normal form.
var Omega = ap(U, U)
