package smartcalc

import (
	"math/big"
	"strings"
)

// item is one element of an expression in postfix order.
type item struct {
	kind itemKind

	// num is the value of an itemNum.
	num *big.Int
	// name is the variable name of an itemName.
	name string
	// neg negates the value of an itemName.
	neg bool
	// pos is the position of the token the item came from.
	pos int
}

type itemKind int8

const (
	itemNone itemKind = iota

	itemNum  // push num
	itemName // push lookup(name), negated if neg

	itemAdd // pop x, pop y, push y+x
	itemSub // pop x, pop y, push y-x
	itemMul // pop x, pop y, push y*x
	itemDiv // pop x, pop y, push y/x
	itemNeg // negate top
)

func (k itemKind) String() string {
	switch k {
	case itemNone:
		return "None"
	case itemNum:
		return "Num"
	case itemName:
		return "Name"
	case itemAdd:
		return "+"
	case itemSub:
		return "-"
	case itemMul:
		return "*"
	case itemDiv:
		return "/"
	case itemNeg:
		return "neg"
	default:
		return "?"
	}
}

func (it item) String() string {
	var b strings.Builder
	it.fmt(&b)
	return b.String()
}

func (it item) fmt(b *strings.Builder) {
	switch it.kind {
	case itemNum:
		b.WriteString(it.num.String())
	case itemName:
		if it.neg {
			b.WriteByte('-')
		}
		b.WriteString(it.name)
	case itemAdd, itemSub, itemMul, itemDiv, itemNeg:
		b.WriteString(it.kind.String())
	default:
		panic("smartcalc: invalid item kind " + it.kind.String() + " after writing " + b.String())
	}
}

// binop gets the item kind and precedence for a binary operator token.
// Higher precedence is more binding.
func binop(text string) (itemKind, int) {
	switch text {
	case "+":
		return itemAdd, 1
	case "-":
		return itemSub, 1
	case "*":
		return itemMul, 2
	case "/":
		return itemDiv, 2
	default:
		panic("smartcalc: invalid operator " + text)
	}
}
