package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kCombinatorOnAB() Term {
	k := Lam("x", Lam("y", V("x")))
	return Ap(k, V("a"), V("b"))
}

func TestEvaluateReachesFixedPoint(t *testing.T) {
	// K a b must evaluate to a.
	res := Evaluate(kCombinatorOnAB(), Options{})
	require.True(t, res.Fixed)
	assert.Equal(t, "a", res.Final.String())
}

func TestEvaluateBasicKeepsNoTrace(t *testing.T) {
	res := Evaluate(kCombinatorOnAB(), Options{Verbosity: Basic})
	require.True(t, res.Fixed)
	assert.Empty(t, res.Trace)
	assert.Equal(t, 1, res.Steps)
}

func TestEvaluateSummaryBuffersTrace(t *testing.T) {
	observed := 0
	res := Evaluate(kCombinatorOnAB(), Options{
		Verbosity: Summary,
		Observer:  func(int, Term) { observed++ },
	})
	require.True(t, res.Fixed)
	require.Len(t, res.Trace, res.Steps)
	assert.Equal(t, "a", res.Trace[len(res.Trace)-1].String())
	// Summary buffers only; the observer stays silent.
	assert.Zero(t, observed)
}

func TestEvaluateVerboseObservesEveryStep(t *testing.T) {
	var seen []string
	res := Evaluate(kCombinatorOnAB(), Options{
		Verbosity: Verbose,
		Observer:  func(_ int, term Term) { seen = append(seen, term.String()) },
	})
	require.True(t, res.Fixed)
	require.Len(t, seen, res.Steps)
	for i, term := range res.Trace {
		assert.Equal(t, term.String(), seen[i])
	}
}

func TestEvaluateAlreadyNormal(t *testing.T) {
	res := Evaluate(Lam("x", V("x")), Options{Verbosity: Summary})
	require.True(t, res.Fixed)
	assert.Zero(t, res.Steps)
	assert.Empty(t, res.Trace)
	assert.Equal(t, `(\x.x)`, res.Final.String())
}

func TestEvaluateOmegaFixesTextually(t *testing.T) {
	// Omega reduces to a term that renders identically, so the driver
	// halts immediately. A documented consequence of using rendering as
	// the equality oracle.
	u := Lam("x", Ap(V("x"), V("x")))
	res := Evaluate(Ap(u, u), Options{})
	assert.True(t, res.Fixed)
	assert.Zero(t, res.Steps)
}

func TestEvaluateDivergenceStaysStepping(t *testing.T) {
	// Y applied to a free variable unfolds forever: g (g (g ...)). The
	// driver must still be stepping when the hook pulls the plug; it
	// must not claim a fixed point.
	y := Lam("g", Ap(
		Lam("x", Ap(V("g"), Ap(V("x"), V("x")))),
		Lam("x", Ap(V("g"), Ap(V("x"), V("x"))))))

	const limit = 25
	res := Evaluate(Ap(y, V("g")), Options{
		Continue: func(step int, _ Term) bool { return step < limit },
	})
	assert.False(t, res.Fixed)
	assert.Equal(t, limit, res.Steps)
	require.NotNil(t, res.Final)
}

func TestVerbosityString(t *testing.T) {
	assert.Equal(t, "basic", Basic.String())
	assert.Equal(t, "summary", Summary.String())
	assert.Equal(t, "verbose", Verbose.String())
}
