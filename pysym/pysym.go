// Package pysym exposes the SymmetricAlgebra engine as the gpython module
// "_symalg", so decomposition runs can be scripted in python.
package pysym

import (
	"github.com/go-python/gpython/py"

	"github.com/joelgibson/SymmetricAlgebra/libsym"
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	PyComboType = py.NewType("Combo", "a formal Z-linear combination of partitions")
)

// gAlgebra is the module-wide ambient algebra; SetRank() swaps it.
var gAlgebra = &libsym.Algebra{}

// SetDefaultRank sets the ambient rank scripts start under, as if the first
// statement executed were SetRank(n).
func SetDefaultRank(n int) {
	gAlgebra = &libsym.Algebra{Rank: n}
}

// Combo wraps a LinCombo together with the algebra its products run in.
type Combo struct {
	lc *libsym.LinCombo
}

func newCombo(lc *libsym.LinCombo) *Combo {
	return &Combo{lc: lc}
}

func (c *Combo) Type() *py.Type {
	return PyComboType
}

func (c *Combo) M__str__() (py.Object, error) {
	return py.String(c.lc.String()), nil
}

func (c *Combo) M__repr__() (py.Object, error) {
	return c.M__str__()
}

func (c *Combo) M__neg__() (py.Object, error) {
	return newCombo(c.lc.Scale(-1)), nil
}

func (c *Combo) M__add__(other py.Object) (py.Object, error) {
	rhs, err := comboFromObj(other)
	if err != nil {
		return nil, err
	}
	return newCombo(c.lc.Plus(rhs.lc)), nil
}

func (c *Combo) M__sub__(other py.Object) (py.Object, error) {
	rhs, err := comboFromObj(other)
	if err != nil {
		return nil, err
	}
	return newCombo(c.lc.Minus(rhs.lc)), nil
}

func (c *Combo) M__mul__(other py.Object) (py.Object, error) {
	rhs, err := comboFromObj(other)
	if err != nil {
		return nil, err
	}
	return newCombo(gAlgebra.Mul(c.lc, rhs.lc)), nil
}

func (c *Combo) M__pow__(exponent, modulus py.Object) (py.Object, error) {
	if _, isNone := modulus.(py.NoneType); modulus != nil && !isNone {
		return nil, py.ExceptionNewf(py.TypeError, "Combo pow() does not support a modulus")
	}
	k, err := py.GetInt(exponent)
	if err != nil {
		return nil, err
	}
	out, err := gAlgebra.Pow(c.lc, int(k))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return newCombo(out), nil
}

func comboFromObj(obj py.Object) (*Combo, error) {
	switch v := obj.(type) {
	case *Combo:
		return v, nil
	case py.Int:
		return newCombo(libsym.Scalar(int64(v))), nil
	}
	return nil, py.ExceptionNewf(py.TypeError, "expected Combo or int (got %v)", obj.Type().Name)
}

// partitionFromObj reads a partition from a python list or tuple of rows.
func partitionFromObj(obj py.Object) (symalg.Partition, error) {
	var items []py.Object
	switch v := obj.(type) {
	case py.Tuple:
		items = v
	case *py.List:
		items = v.Items
	default:
		return nil, py.ExceptionNewf(py.TypeError, "expected a list or tuple of rows (got %v)", obj.Type().Name)
	}

	p := make(symalg.Partition, 0, len(items))
	for _, item := range items {
		row, err := py.GetInt(item)
		if err != nil {
			return nil, err
		}
		p = append(p, int(row))
	}
	if !p.IsValid() {
		return nil, py.ExceptionNewf(py.ValueError, "%v: %v", symalg.ErrBadPartition, p)
	}
	return p, nil
}

func ph_SetRank(module py.Object, args py.Tuple) (py.Object, error) {
	var rank py.Object
	err := py.ParseTuple(args, "i", &rank)
	if err != nil {
		return nil, err
	}
	gAlgebra = &libsym.Algebra{Rank: int(rank.(py.Int))}
	return py.None, nil
}

func ph_Part(module py.Object, args py.Tuple) (py.Object, error) {
	p := make(symalg.Partition, 0, len(args))
	for _, arg := range args {
		row, err := py.GetInt(arg)
		if err != nil {
			return nil, err
		}
		p = append(p, int(row))
	}
	if !p.IsValid() {
		return nil, py.ExceptionNewf(py.ValueError, "%v: %v", symalg.ErrBadPartition, p)
	}
	return newCombo(gAlgebra.Term(p)), nil
}

func ph_Eval(module py.Object, args py.Tuple) (py.Object, error) {
	var src string
	err := py.LoadTuple(args, []interface{}{&src})
	if err != nil {
		return nil, err
	}
	lc, err := libsym.Eval(gAlgebra, src)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return newCombo(lc), nil
}

func ph_DimGL(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 2 {
		return nil, py.ExceptionNewf(py.TypeError, "DimGL(n, partition) takes 2 arguments")
	}
	n, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}
	p, err := partitionFromObj(args[1])
	if err != nil {
		return nil, err
	}
	return py.Int(p.DimGL(int(n))), nil
}

func ph_DimSym(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 1 {
		return nil, py.ExceptionNewf(py.TypeError, "DimSym(partition) takes 1 argument")
	}
	p, err := partitionFromObj(args[0])
	if err != nil {
		return nil, err
	}
	return py.Int(p.DimSym()), nil
}

func ph_Expand(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 2 {
		return nil, py.ExceptionNewf(py.TypeError, "Expand(n, partition) takes 2 arguments")
	}
	n, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}
	p, err := partitionFromObj(args[1])
	if err != nil {
		return nil, err
	}
	if len(p) > int(n) {
		return nil, py.ExceptionNewf(py.ValueError, "partition has more than %d rows", int(n))
	}

	words := libsym.ExpandInGL(int(n), p.HighestWeight())
	out := make(py.Tuple, len(words))
	for i, w := range words {
		letters := make(py.Tuple, len(w))
		for j, c := range w {
			letters[j] = py.Int(c)
		}
		out[i] = letters
	}
	return out, nil
}

func init() {
	{
		methods := []*py.Method{
			py.MustNewMethod("SetRank", ph_SetRank, 0, "SetRank(n) -- products run in GL(n); 0 selects the symmetric algebra"),
			py.MustNewMethod("Part", ph_Part, 0, "Part(rows...) -- the combination holding one partition"),
			py.MustNewMethod("Eval", ph_Eval, 0, "Eval(expr) -- evaluate a partition expression, e.g. '[2, 1] * [1]'"),
			py.MustNewMethod("DimGL", ph_DimGL, 0, "DimGL(n, partition) -- GL(n) dimension via hook lengths"),
			py.MustNewMethod("DimSym", ph_DimSym, 0, "DimSym(partition) -- symmetric group dimension via hook lengths"),
			py.MustNewMethod("Expand", ph_Expand, 0, "Expand(n, partition) -- all crystal words of the shape in GL(n)"),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_symalg",
				Doc:  "SymmetricAlgebra tensor product calculator",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
