package smartcalc

// validate checks that a token stream is a well-formed infix expression:
//
//	Expr    = Operand { op Operand }
//	Operand = num | ident | '(' Expr ')'
//
// Signs have already been folded into operands by the lexer, so every
// tokenOp is binary. toks must end with tokenEOF.
func validate(toks []lexToken) error {
	var opens []lexToken
	want := true // whether an operand is expected next
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenIdent:
			if !want {
				return &SyntaxError{Col: tok.pos, Text: tok.text}
			}
			want = false
		case tokenOpen:
			if !want {
				return &SyntaxError{Col: tok.pos, Text: tok.text}
			}
			opens = append(opens, tok)
		case tokenOp:
			if want {
				return &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			want = true
		case tokenClose:
			if want {
				return &EmptyExpressionError{Col: tok.pos, End: tok.text}
			}
			if len(opens) == 0 {
				return &BracketError{Col: tok.pos}
			}
			opens = opens[:len(opens)-1]
		case tokenEOF:
			if want {
				return &EmptyExpressionError{Col: tok.pos}
			}
			if len(opens) != 0 {
				return &BracketError{Col: opens[len(opens)-1].pos, Open: true}
			}
			return nil
		default:
			panic("smartcalc: unknown token: " + tok.String())
		}
	}
	panic("smartcalc: token stream without EOF")
}
