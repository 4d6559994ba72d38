package church

// Lists as right-nested pairs, terminated by Nil.

var Nil = lam("x", True)

var IsNil = lam("p", ap(v("p"), lam("x", lam("y", False))))

var Cons = lam("h", lam("t", ap(Pair, v("h"), v("t"))))

var Head = First

var Tail = Second

// Index l n returns the nth element of l, zero-based.
var Index = ap(Y, lam("f", lam("l", lam("n",
	ap(IsZero, v("n"),
		ap(Head, v("l")),
		ap(v("f"), ap(Tail, v("l")), ap(Pred, v("n"))))))))
