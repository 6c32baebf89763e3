// stroke.go - Stroke codec
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagStroke = "stroke"
	tagWidth  = "width"
	tagType   = "type"
	tagColor  = "color"
)

// DecodeStroke decodes a (stroke (width W) (type T) [(color R G B A)])
// node. Width and type are positional; the color is present only when a
// fourth element carries the color tag.
func DecodeStroke(n sexp.Node) (models.Stroke, error) {
	list, err := expectList(n, tagStroke)
	if err != nil {
		return models.Stroke{}, err
	}
	if list.Len() < 3 {
		return models.Stroke{}, truncated(tagStroke, "width and type")
	}

	width, err := taggedFloat(list.Get(1), tagWidth)
	if err != nil {
		return models.Stroke{}, err
	}

	typeToken, err := taggedString(list.Get(2), tagType)
	if err != nil {
		return models.Stroke{}, err
	}
	strokeType, err := models.LookupStrokeType(typeToken)
	if err != nil {
		return models.Stroke{}, invalidEnum(tagType, err)
	}

	stroke := models.Stroke{Width: width, Type: strokeType}
	if err := stroke.Validate(); err != nil {
		return models.Stroke{}, err
	}

	if list.Len() > 3 {
		color, err := decodeColor(list.Get(3))
		if err != nil {
			return models.Stroke{}, err
		}
		stroke.Color = &color
	}
	return stroke, nil
}

func decodeColor(n sexp.Node) (models.Color, error) {
	list, err := expectList(n, tagColor)
	if err != nil {
		return models.Color{}, err
	}
	if list.Len() != 5 {
		return models.Color{}, invalidShape(tagColor, "expected four channel values")
	}

	var channels [4]int
	names := [4]string{"red", "green", "blue", "alpha"}
	for i := range channels {
		v, err := intAt(list, i+1, tagColor, names[i]+" channel")
		if err != nil {
			return models.Color{}, err
		}
		channels[i] = v
	}
	return models.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// EncodeStroke encodes a stroke. Field order is fixed: width, type,
// then color only when set.
func EncodeStroke(s models.Stroke) *sexp.List {
	list := sexp.NewList(
		sexp.Symbol(tagStroke),
		sexp.NewList(sexp.Symbol(tagWidth), sexp.Number(s.Width)),
		sexp.NewList(sexp.Symbol(tagType), sexp.Symbol(s.Type)),
	)
	if s.Color != nil {
		list.Append(sexp.NewList(
			sexp.Symbol(tagColor),
			sexp.Int(s.Color.R), sexp.Int(s.Color.G), sexp.Int(s.Color.B), sexp.Int(s.Color.A),
		))
	}
	return list
}
