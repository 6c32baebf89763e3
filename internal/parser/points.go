// points.go - Position, point and point-list codecs
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

// Tag names used across the codec.
const (
	tagAt    = "at"
	tagXY    = "xy"
	tagPts   = "pts"
	tagStart = "start"
	tagEnd   = "end"
)

// DecodePosition decodes an arity-polymorphic (at X Y [ANGLE]) node.
// Two positional numbers leave the angle unset; anything outside two or
// three numbers is an error.
func DecodePosition(n sexp.Node) (models.Position, error) {
	list, err := expectList(n, tagAt)
	if err != nil {
		return models.Position{}, err
	}
	if list.Len() > 4 {
		return models.Position{}, invalidShape(tagAt, "position must have 2 or 3 components")
	}

	x, err := floatAt(list, 1, tagAt, "x coordinate")
	if err != nil {
		return models.Position{}, err
	}
	y, err := floatAt(list, 2, tagAt, "y coordinate")
	if err != nil {
		return models.Position{}, err
	}

	pos := models.Position{X: x, Y: y}
	if list.Len() == 4 {
		angle, err := floatAt(list, 3, tagAt, "angle")
		if err != nil {
			return models.Position{}, err
		}
		pos.Angle = &angle
	}
	return pos, nil
}

// EncodePosition encodes a position. A position without an angle never
// emits a third number.
func EncodePosition(pos models.Position) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagAt), sexp.Number(pos.X), sexp.Number(pos.Y))
	if pos.Angle != nil {
		list.Append(sexp.Number(*pos.Angle))
	}
	return list
}

// decodeXY decodes a (tag X Y) pair node such as (xy ...), (start ...),
// (end ...) or (size ...).
func decodeXY(n sexp.Node, tag string) (models.Point, error) {
	list, err := expectList(n, tag)
	if err != nil {
		return models.Point{}, err
	}
	if list.Len() != 3 {
		return models.Point{}, invalidShape(tag, "expected exactly two coordinates")
	}
	x, err := floatAt(list, 1, tag, "x coordinate")
	if err != nil {
		return models.Point{}, err
	}
	y, err := floatAt(list, 2, tag, "y coordinate")
	if err != nil {
		return models.Point{}, err
	}
	return models.Point{X: x, Y: y}, nil
}

func encodeXY(tag string, p models.Point) *sexp.List {
	return sexp.NewList(sexp.Symbol(tag), sexp.Number(p.X), sexp.Number(p.Y))
}

// DecodePoints decodes a (pts (xy X Y)*) node. Sequence order is
// meaningful and preserved. An empty point list is structurally valid.
func DecodePoints(n sexp.Node) ([]models.Point, error) {
	list, err := expectList(n, tagPts)
	if err != nil {
		return nil, err
	}

	points := make([]models.Point, 0, list.Len()-1)
	for _, item := range list.Items[1:] {
		pt, err := decodeXY(item, tagXY)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

// EncodePoints encodes an ordered point sequence.
func EncodePoints(points []models.Point) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagPts))
	for _, pt := range points {
		list.Append(encodeXY(tagXY, pt))
	}
	return list
}
