package smartcalc

import (
	"math/big"
	"strings"

	"fortio.org/log"
	"github.com/edwingeng/deque"
)

// Expr = Operand { op Operand }
// Operand = [sign] num | [sign] name | [sign] '(' Expr ')'
// op = '+' | '-' | '*' | '/'
// sign = '+' | '-'
//
// Runs of signs are folded to a single sign before parsing, so "2--3" is
// "2+3" and "2*--3" is "2*+3".

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// items is the expression in postfix order.
	items []item
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated with a context. Runs of
// + and - are folded to one sign, the result is checked for well-formedness,
// and then it is converted to postfix order. Every error Parse returns
// matches ErrInvalidExpression.
func Parse(src string) (*Expr, error) {
	line, err := normalize(src)
	if err != nil {
		return nil, err
	}
	toks, err := lex(strings.NewReader(line)).tokens()
	if err != nil {
		return nil, err
	}
	if err := validate(toks); err != nil {
		return nil, err
	}
	items, err := convert(toks)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	ex := Expr{items: items}
	for _, it := range items {
		if it.kind == itemName && !seen[it.name] {
			seen[it.name] = true
			ex.names = append(ex.names, it.name)
		}
	}
	sortstrs(ex.names)
	log.LogVf("parsed %q as %q, postfix %q", src, line, ex.String())
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// convert reorders an infix token stream into postfix using an operator
// stack. Operators of equal precedence are left-associative. toks must end
// with tokenEOF.
func convert(toks []lexToken) ([]item, error) {
	out := make([]item, 0, len(toks))
	ops := deque.NewDeque()
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			n, ok := new(big.Int).SetString(tok.text, 10)
			if !ok {
				panic("smartcalc: invalid number: " + tok.text)
			}
			out = append(out, item{kind: itemNum, num: n, pos: tok.pos})
		case tokenIdent:
			out = append(out, item{kind: itemName, name: tok.text, neg: tok.neg, pos: tok.pos})
		case tokenOpen:
			ops.PushBack(tok)
		case tokenClose:
			for {
				if ops.Empty() {
					return nil, &BracketError{Col: tok.pos}
				}
				top := ops.PopBack().(lexToken)
				if top.kind == tokenOpen {
					if top.neg {
						out = append(out, item{kind: itemNeg, pos: top.pos})
					}
					break
				}
				out = append(out, opitem(top))
			}
		case tokenOp:
			_, prec := binop(tok.text)
			for !ops.Empty() {
				top := ops.Back().(lexToken)
				if top.kind == tokenOpen {
					break
				}
				if _, p := binop(top.text); p < prec {
					break
				}
				ops.PopBack()
				out = append(out, opitem(top))
			}
			ops.PushBack(tok)
		case tokenEOF:
			for !ops.Empty() {
				top := ops.PopBack().(lexToken)
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: top.pos, Open: true}
				}
				out = append(out, opitem(top))
			}
		default:
			panic("smartcalc: unknown token: " + tok.String())
		}
	}
	return out, nil
}

// opitem converts an operator token to its postfix item.
func opitem(tok lexToken) item {
	kind, _ := binop(tok.text)
	return item{kind: kind, pos: tok.pos}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String formats the expression in postfix order with items separated by
// spaces. A negated bracketed group is followed by "neg".
func (e *Expr) String() string {
	var b strings.Builder
	for i, it := range e.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		it.fmt(&b)
	}
	return b.String()
}
