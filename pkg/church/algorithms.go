package church

// Recursive algorithms built with the Y combinator.

var Fact = ap(Y, lam("f", lam("n",
	ap(IsZero, v("n"),
		One,
		ap(Mult, v("n"), ap(v("f"), ap(Pred, v("n"))))))))

var Fibo = ap(Y, lam("f", lam("n",
	ap(IsZero, v("n"),
		Zero,
		ap(IsZero, ap(Pred, v("n")),
			One,
			ap(Plus,
				ap(v("f"), ap(Pred, v("n"))),
				ap(v("f"), ap(Pred, ap(Pred, v("n"))))))))))
