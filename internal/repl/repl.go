// Package repl implements the line-oriented shell around a smartcalc
// context: it routes each input line to an assignment, a lookup, an
// evaluation, or a command, and reports results and errors.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"fortio.org/log"
	"github.com/fatih/color"

	"github.com/zephyrtronium/smartcalc"
)

// Help is the text printed by /help.
const Help = `Smart Calculator

Enter an expression to evaluate it, e.g. 3 + 8 * ((4 + 3) * 2 + 1) - 6 / (2 + 1).
Integers may be arbitrarily large. Division truncates toward zero.
Supported operators: + - * / and parentheses. Repeated signs fold together,
so 2 -- 3 is 5 and 2 --- 3 is -1.

Assign variables with name = value, where the name is Latin letters only and
the value is an integer or another variable. Enter a name alone to print it.

Commands:
/help       print this help
/vars       print all variables
/con EXPR   print EXPR in postfix notation
/exit       quit`

// Options control the presentation of a session.
type Options struct {
	// Prompt is printed before each line is read. Empty means no prompt.
	Prompt string
	// Greeting prints a banner when the session starts.
	Greeting bool
	// Color enables colored error messages.
	Color bool
}

// Session is an interactive calculator session. It is not safe for
// concurrent use.
type Session struct {
	calc *smartcalc.Context
	out  io.Writer
	opts Options
	errc *color.Color
	info *color.Color
}

// New creates a session that evaluates with calc and writes to out.
func New(calc *smartcalc.Context, out io.Writer, opts Options) *Session {
	s := &Session{
		calc: calc,
		out:  out,
		opts: opts,
		errc: color.New(color.FgRed),
		info: color.New(color.FgCyan),
	}
	if opts.Color {
		s.errc.EnableColor()
		s.info.EnableColor()
	} else {
		s.errc.DisableColor()
		s.info.DisableColor()
	}
	return s
}

// Run reads and handles lines from in until EOF or /exit.
func (s *Session) Run(in io.Reader) error {
	if s.opts.Greeting {
		s.info.Fprintln(s.out, "Smart Calculator. Type /help for help, /exit to quit.")
	}
	scan := bufio.NewScanner(in)
	// Literals have no size limit, so neither do lines.
	scan.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		if s.opts.Prompt != "" {
			fmt.Fprint(s.out, s.opts.Prompt)
		}
		if !scan.Scan() {
			break
		}
		if s.Handle(scan.Text()) {
			return nil
		}
	}
	if s.opts.Prompt != "" {
		// Finish the prompt line on EOF.
		fmt.Fprintln(s.out)
	}
	return scan.Err()
}

// Handle processes one line of input and reports whether the session is
// over. Whitespace is insignificant anywhere in a line, commands included, so
// "/ exit" is /exit and "/con 1 + 2" is "/con1+2".
func (s *Session) Handle(line string) bool {
	line = strip(line)
	switch {
	case line == "":
		// nothing
	case strings.HasPrefix(line, "/"):
		return s.command(line)
	case strings.Contains(line, "="):
		log.Debugf("assignment %q", line)
		s.assign(line)
	case smartcalc.IsIdentifier(line):
		log.Debugf("lookup %q", line)
		v, err := s.calc.Lookup(line)
		if err != nil {
			s.fail(line, err)
			return false
		}
		fmt.Fprintln(s.out, v)
	default:
		log.Debugf("expression %q", line)
		v, err := s.calc.Evaluate(line)
		if err != nil {
			s.fail(line, err)
			return false
		}
		fmt.Fprintln(s.out, v)
	}
	return false
}

func (s *Session) assign(line string) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		s.fail(line, &smartcalc.AssignmentError{Value: strings.Join(parts[1:], "=")})
		return
	}
	if err := s.calc.Assign(parts[0], parts[1]); err != nil {
		s.fail(line, err)
	}
}

func (s *Session) command(line string) bool {
	log.Debugf("command %q", line)
	switch {
	case line == "/exit":
		fmt.Fprintln(s.out, "Bye!")
		return true
	case line == "/help":
		fmt.Fprintln(s.out, Help)
	case line == "/vars":
		vars := s.calc.Vars()
		for _, k := range vars.Names() {
			v, _ := vars.Lookup(k)
			fmt.Fprintf(s.out, "%s = %v\n", k, v)
		}
	case strings.HasPrefix(line, "/con"):
		arg := strings.TrimPrefix(line, "/con")
		e, err := smartcalc.Parse(arg)
		if err != nil {
			s.fail(arg, err)
			return false
		}
		fmt.Fprintln(s.out, e)
	default:
		s.errc.Fprintln(s.out, "Unknown command")
	}
	return false
}

// fail reports an error for a line.
func (s *Session) fail(line string, err error) {
	log.LogVf("%q: %v", line, err)
	s.errc.Fprintln(s.out, Message(err))
}

// Message gives the user-facing message for an error from smartcalc.
func Message(err error) string {
	switch {
	case errors.Is(err, smartcalc.ErrInvalidIdentifier):
		return "Invalid identifier"
	case errors.Is(err, smartcalc.ErrInvalidAssignment):
		return "Invalid assignment"
	case errors.Is(err, smartcalc.ErrUnknownVariable):
		return "Unknown variable"
	case errors.Is(err, smartcalc.ErrInvalidExpression):
		return "Invalid expression"
	case errors.Is(err, smartcalc.ErrDivisionByZero):
		return "Division by zero"
	default:
		return err.Error()
	}
}

// strip removes all whitespace from s.
func strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
