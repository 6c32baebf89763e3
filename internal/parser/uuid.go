// uuid.go - UUID codec
package parser

import (
	"github.com/google/uuid"

	"github.com/kicad-visualizer/backend/internal/sexp"
)

const tagUUID = "uuid"

// DecodeUUID decodes a (uuid X) node with exactly one component and
// validates it as an RFC 4122 identifier.
func DecodeUUID(n sexp.Node) (string, error) {
	list, err := expectList(n, tagUUID)
	if err != nil {
		return "", err
	}
	if list.Len() != 2 {
		return "", invalidShape(tagUUID, "uuid must have exactly one component")
	}

	token, err := atomAt(list, 1, tagUUID, "uuid value")
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(token); err != nil {
		return "", invalidUUID(token, err)
	}
	return token, nil
}

// EncodeUUID encodes an identifier string as a (uuid X) node.
func EncodeUUID(id string) *sexp.List {
	return sexp.NewList(sexp.Symbol(tagUUID), sexp.String(id))
}
