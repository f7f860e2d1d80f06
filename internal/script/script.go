package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/bitset"
	"github.com/hupe1980/bitset/binding"
)

var (
	// ErrSyntax is returned for malformed statements.
	ErrSyntax = errors.New("syntax error")

	// ErrUndefined is returned when a statement names an unbound variable.
	ErrUndefined = errors.New("undefined variable")
)

// aliases maps script operator symbols to registry operator hooks.
var aliases = map[string]string{
	"+":  "__add",
	"*":  "__mul",
	"-":  "__sub",
	"#":  "__len",
	"==": "__eq",
	"<":  "__lt",
	"<=": "__le",
}

// Interpreter holds the variable bindings of one script session.
// It is not safe for concurrent use.
type Interpreter struct {
	reg  *binding.Registry
	out  io.Writer
	vars map[string]any
}

// New returns an Interpreter that dispatches to reg and prints to out.
func New(reg *binding.Registry, out io.Writer) *Interpreter {
	return &Interpreter{
		reg:  reg,
		out:  out,
		vars: make(map[string]any),
	}
}

// Run executes r line by line and stops at the first failing statement.
// Errors are prefixed with the 1-based line number.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(ctx, sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

// Exec executes a single statement.
func (in *Interpreter) Exec(ctx context.Context, stmt string) error {
	fields := strings.Fields(stmt)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch {
	case len(fields) >= 2 && fields[1] == "=":
		name := fields[0]
		if !isIdent(name) {
			return fmt.Errorf("%w: invalid variable name %q", ErrSyntax, name)
		}
		if len(fields) == 2 {
			return fmt.Errorf("%w: missing operation after '='", ErrSyntax)
		}
		v, err := in.eval(ctx, fields[2:])
		if err != nil {
			return err
		}
		in.vars[name] = v
		return nil

	case fields[0] == "print":
		if len(fields) != 2 {
			return fmt.Errorf("%w: print takes one variable", ErrSyntax)
		}
		v, err := in.lookup(fields[1])
		if err != nil {
			return err
		}
		return in.print(v)

	case fields[0] == "drop":
		if len(fields) != 2 {
			return fmt.Errorf("%w: drop takes one variable", ErrSyntax)
		}
		if _, err := in.lookup(fields[1]); err != nil {
			return err
		}
		delete(in.vars, fields[1])
		return nil

	default:
		v, err := in.eval(ctx, fields)
		if err != nil {
			return err
		}
		return in.print(v)
	}
}

// Lookup returns the value bound to name.
func (in *Interpreter) Lookup(name string) (any, bool) {
	v, ok := in.vars[name]
	return v, ok
}

func (in *Interpreter) eval(ctx context.Context, expr []string) (any, error) {
	op := expr[0]

	args := make([]any, 0, len(expr)-1)
	for _, tok := range expr[1:] {
		v, err := in.parseArg(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if hook, ok := aliases[op]; ok {
		return in.reg.Operator(ctx, hook, args...)
	}
	return in.reg.Call(ctx, op, args...)
}

func (in *Interpreter) parseArg(tok string) (any, error) {
	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil":
		return nil, nil
	}

	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n, nil
	}
	if !isIdent(tok) {
		return nil, fmt.Errorf("%w: bad argument %q", ErrSyntax, tok)
	}

	return in.lookup(tok)
}

func (in *Interpreter) lookup(name string) (any, error) {
	v, ok := in.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	return v, nil
}

func (in *Interpreter) print(v any) error {
	_, err := fmt.Fprintln(in.out, Format(v))
	return err
}

// Format renders a result value: bitsets as {i, j}, bools as true/false,
// []bool as [T F ...] and integers in decimal.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case *bitset.Bitset:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []bool:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, bit := range x {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if bit {
				sb.WriteByte('T')
			} else {
				sb.WriteByte('F')
			}
		}
		sb.WriteByte(']')
		return sb.String()
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
