package church

// Church booleans: a boolean is a two-argument selector.

var True = lam("x", lam("y", v("x")))

var False = lam("x", lam("y", v("y")))

var Not = lam("p", ap(v("p"), False, True))

var And = lam("p", lam("q", ap(v("p"), v("q"), v("p"))))

var Or = lam("p", lam("q", ap(v("p"), v("p"), v("q"))))

var Xor = lam("p", lam("q", ap(v("p"), ap(Not, v("q")), v("q"))))
