package church

import "github.com/vic/lambdared/pkg/lambda"

// Signed integers as pairs of naturals: Pair p n stands for p - n. The
// representation is not canonical (Pair 2 1 and Pair 1 0 both stand for
// one); the arithmetic below works on any representative.

// Int returns the term standing for the signed integer n.
func Int(n int) lambda.Term {
	if n < 0 {
		return ap(Pair, Zero, Nat(-n))
	}
	return ap(Pair, Nat(n), Zero)
}

var IntNeg = lam("x", ap(Pair, ap(Second, v("x")), ap(First, v("x"))))

var IntAdd = lam("x", lam("y", ap(Pair,
	ap(Plus, ap(First, v("x")), ap(First, v("y"))),
	ap(Plus, ap(Second, v("x")), ap(Second, v("y"))))))

var IntSub = lam("x", lam("y", ap(IntAdd, v("x"), ap(IntNeg, v("y")))))

// IntMul: (a-b)(c-d) = (ac+bd) - (ad+bc).
var IntMul = lam("x", lam("y", ap(Pair,
	ap(Plus,
		ap(Mult, ap(First, v("x")), ap(First, v("y"))),
		ap(Mult, ap(Second, v("x")), ap(Second, v("y")))),
	ap(Plus,
		ap(Mult, ap(First, v("x")), ap(Second, v("y"))),
		ap(Mult, ap(Second, v("x")), ap(First, v("y")))))))

// IntPow raises an integer to the positive component of an integer
// exponent; a pure-negative exponent therefore acts as zero and yields
// Int(1) times nothing applied, i.e. Int(1).
var IntPow = lam("b", lam("e",
	ap(ap(First, v("e")), ap(IntMul, v("b")), Int(1))))

var IntIsZero = lam("x", ap(And,
	ap(Leq, ap(First, v("x")), ap(Second, v("x"))),
	ap(Leq, ap(Second, v("x")), ap(First, v("x")))))

// Sign is a three-way selector: Sign x neg zer pos picks neg, zer, or
// pos according to the sign of x.
var Sign = lam("x", lam("a", lam("b", lam("c",
	ap(Leq, ap(First, v("x")), ap(Second, v("x")),
		ap(Leq, ap(Second, v("x")), ap(First, v("x")), v("b"), v("a")),
		v("c"))))))
