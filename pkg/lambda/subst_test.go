package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteVariableHit(t *testing.T) {
	// Replacing x inside the bare variable x yields the replacement.
	repl := Lam("y", V("y"))
	got := Substitute(V("x"), V("x"), repl)
	assert.Equal(t, repl.String(), got.String())
}

func TestSubstituteVariableMiss(t *testing.T) {
	got := Substitute(V("z"), V("x"), V("y"))
	assert.Equal(t, "z", got.String())
}

func TestSubstituteShadowing(t *testing.T) {
	// An abstraction binding the substituted name shadows it: the body
	// must come back untouched, whatever the replacement.
	self := Lam("v", Ap(V("v"), V("w")))
	for _, repl := range []Term{V("q"), Lam("w", V("w")), Ap(V("a"), V("b"))} {
		got := Substitute(self, V("v"), repl)
		assert.Equal(t, self.String(), got.String())
	}
}

func TestSubstituteDescendsUnderOtherBinder(t *testing.T) {
	// (\y.x) with x := z becomes (\y.z).
	got := Substitute(Lam("y", V("x")), V("x"), V("z"))
	assert.Equal(t, `(\y.z)`, got.String())
}

func TestSubstituteBothSidesOfApplication(t *testing.T) {
	got := Substitute(Ap(V("x"), V("x")), V("x"), V("z"))
	assert.Equal(t, "[z z]", got.String())
}

func TestSubstituteCaptureHazard(t *testing.T) {
	// Known limitation: substituting a term whose free variable collides
	// with an inner binder captures it. (\y.x) with x := y yields (\y.y),
	// silently changing the binding structure. This behavior is the
	// engine's contract; alpha-renaming is deliberately absent.
	got := Substitute(Lam("y", V("x")), V("x"), V("y"))
	assert.Equal(t, `(\y.y)`, got.String())
}
