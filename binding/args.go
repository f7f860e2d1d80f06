package binding

import (
	"fmt"

	"github.com/hupe1980/bitset"
	"github.com/hupe1980/bitset/internal/conv"
)

// call holds the arguments of one dispatched operation.
type call struct {
	name string
	args []any
}

// arg returns the 1-based argument n, or nil when it is absent.
func (c *call) arg(n int) any {
	if n < 1 || n > len(c.args) {
		return nil
	}
	return c.args[n-1]
}

func (c *call) bitset(n int) (*bitset.Bitset, error) {
	b, ok := c.arg(n).(*bitset.Bitset)
	if !ok || b == nil {
		return nil, c.typeError(n, "Bitset")
	}
	return b, nil
}

func (c *call) integer(n int) (int, error) {
	var (
		v   int
		err error
	)

	switch x := c.arg(n).(type) {
	case int:
		v = x
	case int64:
		v, err = conv.Int64ToInt(x)
	case int32:
		v = int(x)
	case uint32:
		v, err = conv.Uint32ToInt(x)
	default:
		return 0, c.typeError(n, "number")
	}

	if err != nil {
		return 0, &ArgError{Func: c.name, Arg: n, Msg: "number has no integer representation", cause: err}
	}
	return v, nil
}

func (c *call) optBool(n int) (bool, error) {
	switch x := c.arg(n).(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	default:
		return false, c.typeError(n, "boolean")
	}
}

// bitsetPair returns the two Bitset operands of a binary operation.
func (c *call) bitsetPair() (*bitset.Bitset, *bitset.Bitset, error) {
	a, err := c.bitset(1)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.bitset(2)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (c *call) typeError(n int, want string) error {
	return &ArgError{
		Func: c.name,
		Arg:  n,
		Msg:  fmt.Sprintf("%s expected, got %s", want, typeName(c.arg(n))),
	}
}

// typeName names a value the way a host would.
func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "no value"
	case *bitset.Bitset:
		if x == nil {
			return "nil"
		}
		return "Bitset"
	case bool:
		return "boolean"
	case int, int64, int32, uint32, float64:
		return "number"
	case string:
		return "string"
	case []bool:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
