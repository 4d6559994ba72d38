package church

// Binary trees as nested pairs: a node is Pair value (Pair left right),
// and the empty tree is Nil.

var Leaf = Nil

var IsLeaf = IsNil

var Node = lam("x", lam("l", lam("r",
	ap(Pair, v("x"), ap(Pair, v("l"), v("r"))))))

var TreeValue = lam("t", ap(First, v("t")))

var TreeLeft = lam("t", ap(First, ap(Second, v("t"))))

var TreeRight = lam("t", ap(Second, ap(Second, v("t"))))
