package church

// Pairs: a pair holds its components and hands them to a selector.

var Pair = lam("x", lam("y", lam("f", ap(v("f"), v("x"), v("y")))))

var First = lam("p", ap(v("p"), True))

var Second = lam("p", ap(v("p"), False))
