package smartcalc

import (
	"math/big"

	"fortio.org/log"
	"github.com/edwingeng/deque"
)

// Context is a context for evaluating expressions. It owns a variable table
// and the operand stack used during evaluation. It is not safe to use a
// Context concurrently.
type Context struct {
	vars  *Table
	stack deque.Deque
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Int
	}
	varsopt map[string]*big.Int
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context. Panics when applied if
// name is not a valid identifier.
func SetVar(name string, val *big.Int) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]*big.Int) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context with an empty variable table
// and applies opts to it.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{vars: NewTable()}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Assignments
// to the copy do not affect ctx, and vice versa.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		vars:  ctx.vars.clone(),
		stack: deque.NewDeque(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars.set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.vars.set(k, v)
			}
		default:
			panic("smartcalc: unknown option type")
		}
	}
	return &n
}

// Vars returns the context's variable table.
func (ctx *Context) Vars() *Table {
	return ctx.vars
}

// Assign sets a variable in the context's table. See Table.Assign.
func (ctx *Context) Assign(name, value string) error {
	return ctx.vars.Assign(name, value)
}

// Lookup returns a copy of the value of a variable.
func (ctx *Context) Lookup(name string) (*big.Int, error) {
	return ctx.vars.Lookup(name)
}

// Evaluate parses and evaluates an expression. Evaluation never changes the
// variable table.
func (ctx *Context) Evaluate(src string) (*big.Int, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	r, err := ctx.Eval(e)
	if err != nil {
		return nil, err
	}
	log.LogVf("evaluated %q = %v", src, r)
	return r, nil
}

// Eval evaluates a parsed expression and returns the result. If an error
// occurs, e.g. a missing variable definition or a division by zero, the
// result is nil.
func (ctx *Context) Eval(e *Expr) (*big.Int, error) {
	for !ctx.stack.Empty() {
		ctx.stack.PopBack()
	}
	if len(e.items) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	for _, it := range e.items {
		switch it.kind {
		case itemNum:
			ctx.stack.PushBack(new(big.Int).Set(it.num))
		case itemName:
			v := ctx.vars.names[it.name]
			if v == nil {
				return nil, &NameError{Name: it.name}
			}
			r := new(big.Int).Set(v)
			if it.neg {
				r.Neg(r)
			}
			ctx.stack.PushBack(r)
		case itemNeg:
			if ctx.stack.Empty() {
				return nil, &SyntaxError{Col: it.pos}
			}
			v := ctx.top()
			v.Neg(v)
		case itemAdd, itemSub, itemMul, itemDiv:
			if ctx.stack.Len() < 2 {
				return nil, &SyntaxError{Col: it.pos}
			}
			// The operand pushed earlier is the left-hand side.
			x := ctx.pop()
			y := ctx.top()
			switch it.kind {
			case itemAdd:
				y.Add(y, x)
			case itemSub:
				y.Sub(y, x)
			case itemMul:
				y.Mul(y, x)
			case itemDiv:
				if x.Sign() == 0 {
					return nil, &DivisionError{Col: it.pos}
				}
				y.Quo(y, x)
			}
		default:
			panic("smartcalc: invalid item " + it.kind.String())
		}
	}
	if ctx.stack.Len() != 1 {
		return nil, &SyntaxError{Col: e.items[len(e.items)-1].pos}
	}
	return ctx.pop(), nil
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() *big.Int {
	return ctx.stack.PopBack().(*big.Int)
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Int {
	return ctx.stack.Back().(*big.Int)
}

// EvalString is a shortcut to parse and evaluate an expression with a new
// context.
func EvalString(src string, opts ...ContextOption) (*big.Int, error) {
	return NewContext(opts...).Evaluate(src)
}
