package libsym

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// Expression grammar over partitions:
//
//	expr  := "-"? term (("+" | "-") term)*
//	term  := power ("*" power)*
//	power := atom ("^" Int)?
//	atom  := Int | "[" (Int ("," Int)*)? "]" | "(" expr ")"
//
// e.g.  "[2, 1] * [1] - 3", "([1] + [2])^2".

type ComboExpr struct {
	Neg   bool       `parser:"@\"-\"?"`
	First *ComboTerm `parser:"@@"`
	Rest  []*ComboOp `parser:"@@*"`
}

type ComboOp struct {
	Op   string     `parser:"@(\"+\" | \"-\")"`
	Term *ComboTerm `parser:"@@"`
}

type ComboTerm struct {
	First *ComboPow   `parser:"@@"`
	Rest  []*ComboPow `parser:"(\"*\" @@)*"`
}

type ComboPow struct {
	Base *ComboAtom `parser:"@@"`
	Exp  *int       `parser:"(\"^\" @Int)?"`
}

type ComboAtom struct {
	Part *PartLit   `parser:"@@"`
	Num  *int64     `parser:"| @Int"`
	Sub  *ComboExpr `parser:"| \"(\" @@ \")\""`
}

type PartLit struct {
	Rows []int `parser:"\"[\" (@Int (\",\" @Int)*)? \"]\""`
}

var parseComboExpr = participle.MustBuild[ComboExpr]()

// Eval parses src and evaluates it to a linear combination over alg.
func Eval(alg *Algebra, src string) (*LinCombo, error) {
	expr, err := parseComboExpr.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(symalg.ErrBadExpr, err.Error())
	}
	return expr.eval(alg)
}

func (expr *ComboExpr) eval(alg *Algebra) (*LinCombo, error) {
	out, err := expr.First.eval(alg)
	if err != nil {
		return nil, err
	}
	if expr.Neg {
		out = out.Scale(-1)
	}
	for _, op := range expr.Rest {
		rhs, err := op.Term.eval(alg)
		if err != nil {
			return nil, err
		}
		if op.Op == "-" {
			out = out.Minus(rhs)
		} else {
			out = out.Plus(rhs)
		}
	}
	return out, nil
}

func (term *ComboTerm) eval(alg *Algebra) (*LinCombo, error) {
	out, err := term.First.eval(alg)
	if err != nil {
		return nil, err
	}
	for _, pow := range term.Rest {
		rhs, err := pow.eval(alg)
		if err != nil {
			return nil, err
		}
		out = alg.Mul(out, rhs)
	}
	return out, nil
}

func (pow *ComboPow) eval(alg *Algebra) (*LinCombo, error) {
	base, err := pow.Base.eval(alg)
	if err != nil {
		return nil, err
	}
	if pow.Exp == nil {
		return base, nil
	}
	return alg.Pow(base, *pow.Exp)
}

func (atom *ComboAtom) eval(alg *Algebra) (*LinCombo, error) {
	switch {
	case atom.Part != nil:
		p := symalg.Partition(atom.Part.Rows)
		if !p.IsValid() {
			return nil, errors.Wrap(symalg.ErrBadPartition, p.String())
		}
		return alg.Term(p), nil
	case atom.Num != nil:
		return Scalar(*atom.Num), nil
	default:
		return atom.Sub.eval(alg)
	}
}
