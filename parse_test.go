package smartcalc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
		vars []string
	}{
		{"num", "1", "1", nil},
		{"neg-num", "-1", "-1", nil},
		{"name", "x", "x", []string{"x"}},
		{"neg-name", "-x", "-x", []string{"x"}},
		{"add", "1+2", "1 2 +", nil},
		{"prec", "2+3*4", "2 3 4 * +", nil},
		{"prec-left", "1*2+3", "1 2 * 3 +", nil},
		{"brackets", "(2+3)*4", "2 3 + 4 *", nil},
		{"sub-left-assoc", "8-3-2", "8 3 - 2 -", nil},
		{"div-left-assoc", "8/4/2", "8 4 / 2 /", nil},
		{"mixed-same-prec", "8/4*2", "8 4 / 2 *", nil},
		{"folded-signs", "5---2", "5 2 -", nil},
		{"folded-to-plus", "5--2", "5 2 +", nil},
		{"unary-after-op", "2*-3", "2 -3 *", nil},
		{"neg-name-after-op", "a*-b", "a -b *", []string{"a", "b"}},
		{"neg-group", "-(1+2)*3", "1 2 + neg 3 *", nil},
		{"nested", "((1))", "1", nil},
		{"spaces", " 1 +  2 ", "1 2 +", nil},
		{"long", "3 + 8 * ((4 + 3) * 2 + 1) - 6 / (2 + 1)", "3 8 4 3 + 2 * 1 + * + 6 2 1 + / -", nil},
		{"repeated-vars", "b+a*b-a", "b a b * + a -", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, e.String())
			assert.Equal(t, c.vars, e.Vars())
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
	}{
		{"empty", "", &EmptyExpressionError{Col: 1}},
		{"blank", "   ", &EmptyExpressionError{Col: 4}},
		{"trailing-op", "1+", &EmptyExpressionError{Col: 3}},
		{"trailing-mul", "1*", &EmptyExpressionError{Col: 3}},
		{"leading-mul", "*2", &OperatorError{Col: 1, Operator: "*"}},
		{"op-op", "1+*2", &OperatorError{Col: 3, Operator: "*"}},
		{"mul-div", "2*/3", &OperatorError{Col: 3, Operator: "/"}},
		{"doubled-mul", "1**2", &OperatorError{Col: 2, Operator: "**"}},
		{"doubled-div", "1//2", &OperatorError{Col: 2, Operator: "//"}},
		{"unclosed", "(1+2", &BracketError{Col: 1, Open: true}},
		{"unclosed-inner", "((1+2)", &BracketError{Col: 1, Open: true}},
		{"unopened", "1+2)", &BracketError{Col: 4}},
		{"empty-brackets", "()", &EmptyExpressionError{Col: 2, End: ")"}},
		{"op-before-close", "(1+)", &EmptyExpressionError{Col: 4, End: ")"}},
		{"adjacent-nums", "2 3", &SyntaxError{Col: 3, Text: "3"}},
		{"adjacent-names", "a b", &SyntaxError{Col: 3, Text: "b"}},
		{"num-bracket", "2(3)", &SyntaxError{Col: 2, Text: "("}},
		{"bracket-bracket", "(2)(3)", &SyntaxError{Col: 4, Text: "("}},
		{"bracket-num", "(2)3", &SyntaxError{Col: 4, Text: "3"}},
		{"bad-rune", "2^3", &LexError{Text: "^", Col: 2}},
		{"num-letter", "2a", &LexError{Text: "2a", Kind: "number", Col: 2}},
		{"lone-sign", "-", &OperatorError{Col: 1, Operator: "-"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			assert.Nil(t, e)
			assert.Equal(t, c.err, err)
			assert.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}

func TestConvertBrackets(t *testing.T) {
	// validate rejects these first, but convert must not rely on that.
	cases := []struct {
		name string
		src  string
		err  *BracketError
	}{
		{"close-without-open", "1)", &BracketError{Col: 2}},
		{"open-without-close", "(1", &BracketError{Col: 1, Open: true}},
		{"close-after-ops", "1+2*3)", &BracketError{Col: 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := lex(strings.NewReader(c.src)).tokens()
			require.NoError(t, err)
			items, err := convert(toks)
			assert.Nil(t, items)
			assert.Equal(t, c.err, err)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	cases := []string{
		"1",
		"-1",
		"a",
		"(a)",
		"-(a)",
		"1+a*(b-2)/c",
		"((((1))))",
		"(1+(2*(3-(4/5))))",
		"-a*-b",
	}
	for _, src := range cases {
		toks, err := lex(strings.NewReader(src)).tokens()
		require.NoError(t, err, src)
		assert.NoError(t, validate(toks), src)
	}
}
