// Package sexp provides a minimal S-expression node model for KiCad
// footprint files: a node is either an atom (bare symbol or quoted string)
// or an ordered list of nodes. The package also ships the generic
// tokenizer (text -> nodes) and emitter (nodes -> text); everything that
// understands footprint semantics lives in internal/parser.
package sexp

import "strconv"

// Node represents a single S-expression node.
type Node interface {
	// IsAtom returns true for symbols and quoted strings.
	IsAtom() bool

	// String returns the serialized text form of the node.
	String() string
}

// Symbol is a bare (unquoted) token: tags, enum values, numbers.
type Symbol string

func (s Symbol) IsAtom() bool   { return true }
func (s Symbol) String() string { return string(s) }

// String is a double-quoted token.
type String string

func (s String) IsAtom() bool { return true }

func (s String) String() string { return strconv.Quote(string(s)) }

// List is an ordered sequence of nodes.
type List struct {
	Items []Node
}

// NewList builds a list from the given nodes.
func NewList(items ...Node) *List {
	return &List{Items: items}
}

func (l *List) IsAtom() bool { return false }

func (l *List) String() string {
	out := "("
	for i, item := range l.Items {
		if i > 0 {
			out += " "
		}
		out += item.String()
	}
	return out + ")"
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.Items) }

// Get returns the element at index i, or nil when out of range.
func (l *List) Get(i int) Node {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}

// Tag returns the leading symbol of the list. ok is false when the list
// is empty or its first element is not a symbol.
func (l *List) Tag() (string, bool) {
	if len(l.Items) == 0 {
		return "", false
	}
	sym, ok := l.Items[0].(Symbol)
	if !ok {
		return "", false
	}
	return string(sym), true
}

// Append adds nodes to the end of the list and returns the list.
func (l *List) Append(nodes ...Node) *List {
	l.Items = append(l.Items, nodes...)
	return l
}

// AtomText returns the raw text of an atom: the unquoted value for
// strings, the token itself for symbols. ok is false for lists.
func AtomText(n Node) (string, bool) {
	switch a := n.(type) {
	case Symbol:
		return string(a), true
	case String:
		return string(a), true
	default:
		return "", false
	}
}

// Number formats a float as a bare symbol the way KiCad writes numbers:
// shortest decimal form, no exponent for typical coordinate magnitudes.
func Number(v float64) Symbol {
	return Symbol(strconv.FormatFloat(v, 'f', -1, 64))
}

// Int formats an integer as a bare symbol.
func Int(v int) Symbol {
	return Symbol(strconv.Itoa(v))
}
