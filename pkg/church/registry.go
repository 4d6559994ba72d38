package church

import (
	"fmt"
	"sort"

	"github.com/vic/lambdared/pkg/lambda"
)

// registry maps the traditional uppercase names to their terms. Keys are
// the names the original combinator literature uses, so callers can pick
// a term without any surface syntax.
var registry = map[string]lambda.Term{
	"I":     I,
	"K":     K,
	"S":     S,
	"B":     B,
	"C":     C,
	"W":     W,
	"U":     U,
	"Y":     Y,
	"IOTA":  Iota,
	"OMEGA": Omega,

	"TRUE":  True,
	"FALSE": False,
	"NOT":   Not,
	"AND":   And,
	"OR":    Or,
	"XOR":   Xor,

	"ZERO":   Zero,
	"ONE":    One,
	"SUCC":   Succ,
	"PLUS":   Plus,
	"MULT":   Mult,
	"POW":    Pow,
	"PRED":   Pred,
	"SUB":    Sub,
	"ISZERO": IsZero,
	"LEQ":    Leq,

	"PAIR":   Pair,
	"FIRST":  First,
	"SECOND": Second,

	"NIL":   Nil,
	"ISNIL": IsNil,
	"CONS":  Cons,
	"HEAD":  Head,
	"TAIL":  Tail,
	"INDEX": Index,

	"LEAF":      Leaf,
	"ISLEAF":    IsLeaf,
	"NODE":      Node,
	"TREEVAL":   TreeValue,
	"TREELEFT":  TreeLeft,
	"TREERIGHT": TreeRight,

	"INEG":    IntNeg,
	"IADD":    IntAdd,
	"ISUB":    IntSub,
	"IMUL":    IntMul,
	"IEXP":    IntPow,
	"IISZERO": IntIsZero,
	"SIGN":    Sign,

	"FACT": Fact,
	"FIBO": Fibo,
}

// Lookup resolves a named term from the registry.
func Lookup(name string) (lambda.Term, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("church: unknown term %q", name)
	}
	return t, nil
}

// Names lists every registered term name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
