package binding

import (
	"github.com/hupe1980/bitset"
)

// handler implements one operation over marshaled arguments.
type handler func(c *call) (any, error)

type operation struct {
	fn handler
	// basic marks operations exposed by ProfileBasic.
	basic bool
	// mutating marks operations that modify their first argument.
	mutating bool
}

var operations = map[string]operation{
	"new":         {fn: opNew, basic: true},
	"set":         {fn: pointMutator((*bitset.Bitset).Set), basic: true, mutating: true},
	"clear":       {fn: pointMutator((*bitset.Bitset).Clear), basic: true, mutating: true},
	"set_range":   {fn: rangeMutator((*bitset.Bitset).SetRange), basic: true, mutating: true},
	"clear_range": {fn: rangeMutator((*bitset.Bitset).ClearRange), basic: true, mutating: true},
	"get":         {fn: opGet, basic: true},
	"get_range":   {fn: opGetRange, basic: true},
	"count":       {fn: opCount, basic: true},

	"intersection":   {fn: binary(bitset.Intersection), basic: true},
	"union":          {fn: binary(bitset.Union), basic: true},
	"difference":     {fn: binary(bitset.Difference)},
	"symmetric_diff": {fn: binary(bitset.SymmetricDifference)},

	"intersection_mut":   {fn: binary((*bitset.Bitset).InPlaceIntersection), mutating: true},
	"union_mut":          {fn: binary((*bitset.Bitset).InPlaceUnion), mutating: true},
	"difference_mut":     {fn: binary((*bitset.Bitset).InPlaceDifference), mutating: true},
	"symmetric_diff_mut": {fn: binary((*bitset.Bitset).InPlaceSymmetricDifference), mutating: true},

	"equals":        {fn: relation((*bitset.Bitset).Equal)},
	"subset":        {fn: relation((*bitset.Bitset).IsSubset)},
	"strict_subset": {fn: relation((*bitset.Bitset).IsStrictSubset)},

	"dump_raw": {fn: opDumpRaw, basic: true},
	"dump_len": {fn: opDumpLen, basic: true},
}

// operators maps host operator hooks to operations. Only ProfileFull
// registers them.
var operators = map[string]string{
	"__add": "union",
	"__mul": "intersection",
	"__sub": "difference",
	"__len": "count",
	"__eq":  "equals",
	"__lt":  "strict_subset",
	"__le":  "subset",
}

// opNew accepts no argument (single empty word), a Bitset (clone) or a
// size with an optional fill flag.
func opNew(c *call) (any, error) {
	switch src := c.arg(1).(type) {
	case nil:
		return bitset.New(), nil
	case *bitset.Bitset:
		return src.Clone(), nil
	case bool:
		return nil, c.typeError(1, "number")
	}

	size, err := c.integer(1)
	if err != nil {
		return nil, err
	}
	fill, err := c.optBool(2)
	if err != nil {
		return nil, err
	}

	b, err := bitset.Alloc(size, fill)
	if err != nil {
		return nil, translateError(c.name, err)
	}
	return b, nil
}

func pointMutator(fn func(b *bitset.Bitset, i int) error) handler {
	return func(c *call) (any, error) {
		b, err := c.bitset(1)
		if err != nil {
			return nil, err
		}
		i, err := c.integer(2)
		if err != nil {
			return nil, err
		}
		if err := fn(b, i); err != nil {
			return nil, translateError(c.name, err)
		}
		return b, nil
	}
}

func rangeMutator(fn func(b *bitset.Bitset, lo, hi int) error) handler {
	return func(c *call) (any, error) {
		b, lo, hi, err := rangeArgs(c)
		if err != nil {
			return nil, err
		}
		if err := fn(b, lo, hi); err != nil {
			return nil, translateError(c.name, err)
		}
		return b, nil
	}
}

func rangeArgs(c *call) (*bitset.Bitset, int, int, error) {
	b, err := c.bitset(1)
	if err != nil {
		return nil, 0, 0, err
	}
	lo, err := c.integer(2)
	if err != nil {
		return nil, 0, 0, err
	}
	hi, err := c.integer(3)
	if err != nil {
		return nil, 0, 0, err
	}
	return b, lo, hi, nil
}

func opGet(c *call) (any, error) {
	b, err := c.bitset(1)
	if err != nil {
		return nil, err
	}
	i, err := c.integer(2)
	if err != nil {
		return nil, err
	}
	v, err := b.Get(i)
	if err != nil {
		return nil, translateError(c.name, err)
	}
	return v, nil
}

func opGetRange(c *call) (any, error) {
	b, lo, hi, err := rangeArgs(c)
	if err != nil {
		return nil, err
	}
	v, err := b.GetRange(lo, hi)
	if err != nil {
		return nil, translateError(c.name, err)
	}
	return v, nil
}

func opCount(c *call) (any, error) {
	b, err := c.bitset(1)
	if err != nil {
		return nil, err
	}
	return int64(b.Count()), nil
}

// binary covers the constructive and in-place algebra; the in-place
// methods return their receiver.
func binary(fn func(a, b *bitset.Bitset) *bitset.Bitset) handler {
	return func(c *call) (any, error) {
		a, b, err := c.bitsetPair()
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func relation(fn func(a, b *bitset.Bitset) bool) handler {
	return func(c *call) (any, error) {
		a, b, err := c.bitsetPair()
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func opDumpRaw(c *call) (any, error) {
	b, err := c.bitset(1)
	if err != nil {
		return nil, err
	}
	i, err := c.integer(2)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, &ArgError{Func: c.name, Arg: 2, Msg: "expected positive index"}
	}
	w, err := b.RawWord(i)
	if err != nil {
		return nil, &ArgError{Func: c.name, Arg: 2, Msg: "word index out of range", cause: err}
	}
	return int64(w), nil
}

func opDumpLen(c *call) (any, error) {
	b, err := c.bitset(1)
	if err != nil {
		return nil, err
	}
	return int64(b.WordLen()), nil
}
