// Package lambda implements an evaluator for the untyped lambda calculus:
// a term model, substitution, beta-reduction, and a driver that steps a
// term to its normal form.
//
// Terms are immutable values. Every transformation returns a fresh tree
// with no subterms shared with its input, so successive generations of a
// term can be retained and compared freely.
package lambda

import "fmt"

// Term represents a lambda calculus term. The type is closed: the only
// implementations are Var, Abs, and App.
type Term interface {
	fmt.Stringer

	// Clone returns a deep copy sharing no structure with the receiver.
	Clone() Term

	term()
}

// Var represents a variable, either a binding site or a free identifier.
// Two variables are the same variable iff their names are equal; there is
// no alpha-equivalence and no de Bruijn indexing.
type Var struct {
	Name string
}

func (v Var) String() string { return v.Name }

func (v Var) Clone() Term { return Var{Name: v.Name} }

func (Var) term() {}

// Abs represents an abstraction. Bound names the parameter, Body is the
// function's definition.
type Abs struct {
	Bound Var
	Body  Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(\\%s.%s)", a.Bound, a.Body)
}

func (a Abs) Clone() Term {
	return Abs{Bound: a.Bound, Body: a.Body.Clone()}
}

func (Abs) term() {}

// App represents an application of a function to an argument.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("[%s %s]", a.Fun, a.Arg)
}

func (a App) Clone() Term {
	return App{Fun: a.Fun.Clone(), Arg: a.Arg.Clone()}
}

func (App) term() {}
