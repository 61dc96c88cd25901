package smartcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// neg marks a unary minus folded into an identifier or open bracket.
	// Numbers keep their sign in text instead.
	neg bool
}

func (t lexToken) String() string {
	s := t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
	if t.neg {
		s = "-" + s
	}
	return s
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer literal, possibly signed.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// operand is whether the next token is in operand position, where a
	// sign is unary instead of a binary operator.
	operand bool
	eof     bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:     src,
		operand: true,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent times,
// the result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune + 1}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.operandToken(tok, l.scanNum)
		case isLetter(r):
			l.unreadRune()
			return l.operandToken(tok, l.scanIdent)
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			l.operand = true
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			l.operand = false
			return tok, nil
		case l.operand && (r == '+' || r == '-'):
			return l.signed(tok, r)
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			l.operand = true
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// operandToken finishes a number or identifier token using scan.
func (l *lexer) operandToken(tok lexToken, scan func() (tokenKind, error)) (lexToken, error) {
	kind, err := scan()
	if err != nil {
		return tok, err
	}
	tok.text += l.buf.String()
	tok.kind = kind
	l.operand = false
	return tok, nil
}

// signed scans the operand that a unary sign applies to and folds the sign
// into it.
func (l *lexer) signed(tok lexToken, s rune) (lexToken, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return tok, &OperatorError{Col: tok.pos, Operator: string(s)}
		}
		return tok, err
	}
	switch {
	case '0' <= r && r <= '9':
		l.unreadRune()
		tok.text = string(s)
		return l.operandToken(tok, l.scanNum)
	case isLetter(r):
		l.unreadRune()
		tok.neg = s == '-'
		return l.operandToken(tok, l.scanIdent)
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		tok.neg = s == '-'
		l.operand = true
		return tok, nil
	default:
		l.unreadRune()
		return tok, &OperatorError{Col: tok.pos, Operator: string(s)}
	}
}

func (l *lexer) scanNum() (tokenKind, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the digit that decides number scanning, so
				// we have scanned at least one rune.
				return tokenNum, nil
			}
			return tokenNone, err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case isLetter(r):
			l.buf.WriteRune(r)
			return tokenNone, l.error("number")
		default:
			l.unreadRune()
			return tokenNum, nil
		}
	}
}

func (l *lexer) scanIdent() (tokenKind, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokenIdent, nil
			}
			return tokenNone, err
		}
		switch {
		case isLetter(r):
			l.buf.WriteRune(r)
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
			return tokenNone, l.error("identifier")
		default:
			l.unreadRune()
			return tokenIdent, nil
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// tokens scans the entire input, including the final EOF token.
func (l *lexer) tokens() ([]lexToken, error) {
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// isLetter reports whether r may appear in an identifier. Only unaccented
// Latin letters are allowed.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "identifier", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *LexError) Pos() int {
	return err.Col
}
