package sexp

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads every top-level S-expression from r.
func Parse(r io.Reader) ([]Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return parseAll(string(data))
}

// ParseString parses every top-level S-expression in s.
func ParseString(s string) ([]Node, error) {
	return parseAll(s)
}

// ParseOne parses exactly one top-level S-expression and rejects
// trailing content. This is the entry point for single-document files.
func ParseOne(s string) (Node, error) {
	nodes, err := parseAll(s)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if len(nodes) > 1 {
		return nil, fmt.Errorf("unexpected trailing content after first expression")
	}
	return nodes[0], nil
}

func parseAll(s string) ([]Node, error) {
	sc := &scanner{src: s}
	var nodes []Node
	for {
		sc.skipSpace()
		if sc.eof() {
			return nodes, nil
		}
		n, err := sc.next()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// scanner walks the source text rune by rune. Positions are byte
// offsets; KiCad files are ASCII outside of quoted strings.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.src) && unicode.IsSpace(rune(sc.src[sc.pos])) {
		sc.pos++
	}
}

func (sc *scanner) next() (Node, error) {
	sc.skipSpace()
	if sc.eof() {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch sc.src[sc.pos] {
	case '(':
		return sc.list()
	case ')':
		return nil, fmt.Errorf("unexpected ')' at offset %d", sc.pos)
	case '"':
		return sc.quoted()
	default:
		return sc.symbol()
	}
}

func (sc *scanner) list() (Node, error) {
	sc.pos++ // consume '('
	list := &List{}
	for {
		sc.skipSpace()
		if sc.eof() {
			return nil, fmt.Errorf("unterminated list")
		}
		if sc.src[sc.pos] == ')' {
			sc.pos++
			return list, nil
		}
		item, err := sc.next()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}

func (sc *scanner) quoted() (Node, error) {
	sc.pos++ // consume opening quote
	var b strings.Builder
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		switch c {
		case '"':
			sc.pos++
			return String(b.String()), nil
		case '\\':
			if sc.pos+1 >= len(sc.src) {
				return nil, fmt.Errorf("unterminated escape in string")
			}
			sc.pos++
			switch esc := sc.src[sc.pos]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(esc)
			}
			sc.pos++
		default:
			b.WriteByte(c)
			sc.pos++
		}
	}
	return nil, fmt.Errorf("unterminated string literal")
}

func (sc *scanner) symbol() (Node, error) {
	start := sc.pos
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		if c == '(' || c == ')' || c == '"' || unicode.IsSpace(rune(c)) {
			break
		}
		sc.pos++
	}
	if sc.pos == start {
		return nil, fmt.Errorf("empty token at offset %d", start)
	}
	return Symbol(sc.src[start:sc.pos]), nil
}
