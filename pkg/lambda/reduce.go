package lambda

// Reduce attempts one layer of simplification of t and returns the result
// as a fresh tree. Variables are terminal. Reduction proceeds under
// binders. An application whose head is a bare variable is stuck; its
// argument is reduced instead. Any other application is handed to Apply,
// which performs the beta step.
//
// Reduce is total: every input yields a well-formed term. The only failure
// mode of repeated reduction is non-termination, which is a property of
// the calculus, not of this function.
func Reduce(t Term) Term {
	switch t := t.(type) {
	case Var:
		return t.Clone()
	case Abs:
		return Abs{Bound: t.Bound, Body: Reduce(t.Body)}
	case App:
		if head, ok := t.Fun.(Var); ok {
			// Stuck: a variable head cannot consume the argument.
			return App{Fun: head.Clone(), Arg: Reduce(t.Arg)}
		}
		return Apply(t.Fun, t.Arg)
	}
	panic("lambda: unknown term variant")
}

// Apply combines f, acting as a function, with arg.
//
// An abstraction consumes arg by substitution; this is the only place
// evaluation triggers substitution. A variable is stuck and the pair is
// rebuilt as an application, though an application argument is reduced
// first so stuck terms still make progress on their operand. When f is
// itself an application it is reduced until it stops changing, then
// either applied or attached as-is.
func Apply(f Term, arg Term) Term {
	switch f := f.(type) {
	case Var:
		if a, ok := arg.(App); ok {
			arg = Reduce(a)
		} else {
			arg = arg.Clone()
		}
		return App{Fun: f.Clone(), Arg: arg}
	case Abs:
		return Substitute(f.Body, f.Bound, arg)
	case App:
		candidate := Reduce(f)
		if candidate.String() == f.String() {
			// f is already a normal form; keep it as the head.
			return App{Fun: f.Clone(), Arg: arg.Clone()}
		}
		return Apply(candidate, arg)
	}
	panic("lambda: unknown term variant")
}
