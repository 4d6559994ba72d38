package lambda

// Builders for authoring terms in Go source. They construct values only;
// none of them reduces anything.

// V makes a variable.
func V(name string) Var { return Var{Name: name} }

// Lam makes an abstraction binding name over body.
func Lam(name string, body Term) Abs {
	return Abs{Bound: Var{Name: name}, Body: body}
}

// Ap applies f to each argument in turn, associating to the left, so
// Ap(f, a, b) is [[f a] b].
func Ap(f Term, args ...Term) Term {
	t := f
	for _, arg := range args {
		t = App{Fun: t, Arg: arg}
	}
	return t
}
