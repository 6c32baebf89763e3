package sexp

import (
	"io"
	"strings"
)

// Format serializes a node on a single line.
func Format(n Node) string {
	return n.String()
}

// FormatIndent serializes a node with nested lists broken onto their own
// lines, the way pcbnew pretty-prints footprint files. Atoms and flat
// lists stay on one line.
func FormatIndent(n Node) string {
	var b strings.Builder
	writeIndent(&b, n, 0)
	b.WriteByte('\n')
	return b.String()
}

// Write serializes a node to w using the indented form.
func Write(w io.Writer, n Node) error {
	_, err := io.WriteString(w, FormatIndent(n))
	return err
}

func writeIndent(b *strings.Builder, n Node, depth int) {
	list, ok := n.(*List)
	if !ok || flat(list) {
		b.WriteString(n.String())
		return
	}

	// A list with nested lists: leading atoms share the first line,
	// every list child gets its own indented line.
	b.WriteByte('(')
	for i, item := range list.Items {
		if _, isList := item.(*List); isList {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("\t", depth+1))
			writeIndent(b, item, depth+1)
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
}

// flat reports whether every element of the list is an atom.
func flat(l *List) bool {
	for _, item := range l.Items {
		if !item.IsAtom() {
			return false
		}
	}
	return true
}
