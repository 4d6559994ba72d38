package church

import "github.com/vic/lambdared/pkg/lambda"

// Church naturals: the numeral n applies its first argument n times to
// its second.

var Zero = lam("f", lam("x", v("x")))

var One = lam("f", lam("x", ap(v("f"), v("x"))))

var Succ = lam("n", lam("f", lam("x",
	ap(v("f"), ap(v("n"), v("f"), v("x"))))))

var Plus = lam("m", lam("n", ap(v("m"), Succ, v("n"))))

var Mult = lam("m", lam("n", ap(v("m"), ap(Plus, v("n")), Zero)))

var Pow = lam("m", lam("n", ap(v("n"), ap(Mult, v("m")), One)))

// Pred is Kleene's predecessor; Pred Zero = Zero.
var Pred = lam("n", lam("f", lam("x",
	ap(v("n"),
		lam("g", lam("h", ap(v("h"), ap(v("g"), v("f"))))),
		lam("u", v("x")),
		lam("u", v("u"))))))

// Sub is truncated subtraction: Sub m n = max(m-n, 0).
var Sub = lam("m", lam("n", ap(v("n"), Pred, v("m"))))

var IsZero = lam("n", ap(v("n"), lam("x", False), True))

var Leq = lam("m", lam("n", ap(IsZero, ap(Sub, v("m"), v("n")))))

// Nat returns the Church numeral for n. Non-positive n yields Zero.
func Nat(n int) lambda.Term {
	if n <= 0 {
		return Zero
	}
	numeral := ap(v("f"), v("x"))
	for i := 1; i < n; i++ {
		numeral = ap(v("f"), numeral)
	}
	return lam("f", lam("x", numeral))
}
