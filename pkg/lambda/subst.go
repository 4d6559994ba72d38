package lambda

// Substitute replaces every free occurrence of target inside t with a copy
// of repl. It is total and purely structural.
//
// Binding uses lexical shadowing without renaming: when an abstraction's
// bound variable equals target, the abstraction is returned unchanged (no
// descent). Capture-avoiding alpha-renaming is deliberately not performed;
// substituting a term whose free variables collide with an inner binder
// can capture them. See the package documentation for this limitation.
func Substitute(t Term, target Var, repl Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == target.Name {
			return repl.Clone()
		}
		return t.Clone()
	case Abs:
		if t.Bound.Name == target.Name {
			// Inner binder shadows the one being substituted for.
			return t.Clone()
		}
		return Abs{Bound: t.Bound, Body: Substitute(t.Body, target, repl)}
	case App:
		return App{
			Fun: Substitute(t.Fun, target, repl),
			Arg: Substitute(t.Arg, target, repl),
		}
	}
	panic("lambda: unknown term variant")
}
