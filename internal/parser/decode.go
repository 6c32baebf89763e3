// Package parser implements the bidirectional mapping between the
// untyped S-expression node tree of a .kicad_mod file and the typed
// records in internal/models. Every entity has a Decode function (node
// -> record, validating tags, positional fields and vocabularies) and
// an Encode function (record -> node, fixed field order, unset optional
// fields omitted). Decode and encode are pure and safe to call from
// any number of goroutines.
package parser

import (
	"strconv"

	"github.com/kicad-visualizer/backend/internal/sexp"
)

// expectList checks that n is a list whose leading atom equals tag.
// Every composite decode starts here.
func expectList(n sexp.Node, tag string) (*sexp.List, error) {
	list, ok := n.(*sexp.List)
	if !ok {
		return nil, invalidShape(tag, "expected a list node")
	}
	got, ok := list.Tag()
	if !ok {
		return nil, invalidShape(tag, "list has no leading tag atom")
	}
	if got != tag {
		return nil, wrongTag(tag, got)
	}
	return list, nil
}

// atomAt reads the positional element at index i as raw atom text.
func atomAt(l *sexp.List, i int, tag, what string) (string, error) {
	if i >= l.Len() {
		return "", truncated(tag, what)
	}
	text, ok := sexp.AtomText(l.Get(i))
	if !ok {
		return "", invalidShape(tag, what+" must be an atom")
	}
	return text, nil
}

// floatAt reads the positional element at index i as a float.
func floatAt(l *sexp.List, i int, tag, what string) (float64, error) {
	text, err := atomAt(l, i, tag, what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalidNumber(tag, text, err)
	}
	return v, nil
}

// intAt reads the positional element at index i as an integer.
func intAt(l *sexp.List, i int, tag, what string) (int, error) {
	text, err := atomAt(l, i, tag, what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, invalidNumber(tag, text, err)
	}
	return v, nil
}

// taggedFloat decodes a single-value numeric wrapper such as
// (width 0.05) or (scale 2.5).
func taggedFloat(n sexp.Node, tag string) (float64, error) {
	list, err := expectList(n, tag)
	if err != nil {
		return 0, err
	}
	if list.Len() != 2 {
		return 0, invalidShape(tag, "expected exactly one value")
	}
	return floatAt(list, 1, tag, "value")
}

// taggedString decodes a single-value string wrapper such as
// (descr "...") or (generator pcbnew).
func taggedString(n sexp.Node, tag string) (string, error) {
	list, err := expectList(n, tag)
	if err != nil {
		return "", err
	}
	if list.Len() != 2 {
		return "", invalidShape(tag, "expected exactly one value")
	}
	return atomAt(list, 1, tag, "value")
}
