package smartcalc

import (
	"math/big"

	"fortio.org/log"
)

// Table maps variable names to integers. Values in the table are private
// copies, so assigning one variable to another copies the value as it is at
// the time of assignment.
type Table struct {
	names map[string]*big.Int
}

// NewTable creates an empty variable table.
func NewTable() *Table {
	return &Table{names: make(map[string]*big.Int)}
}

// Assign sets the variable key to value. key must consist of Latin letters.
// value must be an integer literal or the name of an existing variable,
// either optionally preceded by + or -. A failed assignment does not change
// the table.
func (t *Table) Assign(key, value string) error {
	if !IsIdentifier(key) {
		return &IdentifierError{Name: key}
	}
	neg, body, ok := splitSign(value)
	if !ok {
		return &AssignmentError{Value: value}
	}
	var v *big.Int
	switch {
	case isDigits(body):
		v, _ = new(big.Int).SetString(value, 10)
	case IsIdentifier(body):
		src := t.names[body]
		if src == nil {
			return &NameError{Name: body}
		}
		v = new(big.Int).Set(src)
		if neg {
			v.Neg(v)
		}
	default:
		return &AssignmentError{Value: value}
	}
	t.names[key] = v
	log.LogVf("assigned %s = %v", key, v)
	return nil
}

// Lookup returns a copy of the value of a variable.
func (t *Table) Lookup(name string) (*big.Int, error) {
	v := t.names[name]
	if v == nil {
		return nil, &NameError{Name: name}
	}
	return new(big.Int).Set(v), nil
}

// Names returns the names of all variables in the table in sorted order.
func (t *Table) Names() []string {
	r := make([]string, 0, len(t.names))
	for k := range t.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Len returns the number of variables in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// set stores a copy of v. Panics if name is not an identifier.
func (t *Table) set(name string, v *big.Int) {
	if !IsIdentifier(name) {
		panic("smartcalc: invalid variable name " + name)
	}
	t.names[name] = new(big.Int).Set(v)
}

// clone copies the table. Stored values are never modified in place, so the
// copy shares them.
func (t *Table) clone() *Table {
	n := &Table{names: make(map[string]*big.Int, len(t.names))}
	for k, v := range t.names {
		n.names[k] = v
	}
	return n
}

// IsIdentifier reports whether s is a valid variable name, i.e. one or more
// unaccented Latin letters.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitSign removes a single leading sign from s. ok is false if nothing
// remains.
func splitSign(s string) (neg bool, body string, ok bool) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg, s = s[0] == '-', s[1:]
	}
	return neg, s, s != ""
}
