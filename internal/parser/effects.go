// effects.go - Font and text-effects codecs
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagEffects     = "effects"
	tagFont        = "font"
	tagFace        = "face"
	tagSize        = "size"
	tagThickness   = "thickness"
	tagLineSpacing = "line_spacing"
	tagJustify     = "justify"
	tagBold        = "bold"
	tagItalic      = "italic"
	tagMirror      = "mirror"
	tagHide        = "hide"
)

// DecodeTextEffects decodes an (effects ...) node. The font sub-node is
// required; justification and the hide flag are scanned from the tail
// in any order. Effects are lenient: unrecognized tags are skipped.
func DecodeTextEffects(n sexp.Node) (models.TextEffects, error) {
	list, err := expectList(n, tagEffects)
	if err != nil {
		return models.TextEffects{}, err
	}

	var effects models.TextEffects
	fontSeen := false

	for _, item := range list.Items[1:] {
		if text, ok := sexp.AtomText(item); ok {
			if text == tagHide {
				effects.Hide = true
			}
			continue
		}

		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagFont:
			font, err := decodeFont(sub)
			if err != nil {
				return models.TextEffects{}, err
			}
			effects.Font = font
			fontSeen = true
		case tagJustify:
			decodeJustify(sub, &effects)
		}
	}

	if !fontSeen {
		return models.TextEffects{}, truncated(tagEffects, "font settings")
	}
	return effects, nil
}

// decodeJustify folds the tokens of a (justify ...) node into the
// effects record. Horizontal and vertical tokens may appear together.
func decodeJustify(list *sexp.List, effects *models.TextEffects) {
	for _, item := range list.Items[1:] {
		text, ok := sexp.AtomText(item)
		if !ok {
			continue
		}
		switch text {
		case models.JustifyLeft, models.JustifyRight:
			effects.JustifyHorizontal = text
		case models.JustifyTop, models.JustifyBottom:
			effects.JustifyVertical = text
		case tagMirror:
			effects.Mirror = true
		}
	}
}

// decodeFont decodes a (font ...) node. Height and width default to 1.0
// when no size tag is present. Bold and italic are bare flag atoms.
func decodeFont(list *sexp.List) (models.Font, error) {
	font := models.DefaultFont()

	for _, item := range list.Items[1:] {
		if text, ok := sexp.AtomText(item); ok {
			switch text {
			case tagBold:
				font.Bold = true
			case tagItalic:
				font.Italic = true
			}
			continue
		}

		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagFace:
			face, err := atomAt(sub, 1, tagFace, "font face")
			if err != nil {
				return models.Font{}, err
			}
			font.Face = face
		case tagSize:
			if sub.Len() != 3 {
				return models.Font{}, invalidShape(tagSize, "expected height and width")
			}
			height, err := floatAt(sub, 1, tagSize, "height")
			if err != nil {
				return models.Font{}, err
			}
			width, err := floatAt(sub, 2, tagSize, "width")
			if err != nil {
				return models.Font{}, err
			}
			font.Height, font.Width = height, width
		case tagThickness:
			v, err := taggedFloat(sub, tagThickness)
			if err != nil {
				return models.Font{}, err
			}
			font.Thickness = &v
		case tagLineSpacing:
			v, err := taggedFloat(sub, tagLineSpacing)
			if err != nil {
				return models.Font{}, err
			}
			font.LineSpacing = &v
		}
	}

	if err := font.Validate(); err != nil {
		return models.Font{}, err
	}
	return font, nil
}

// EncodeTextEffects encodes text effects. Field order is fixed: font,
// justify (only when any token is set), then the hide flag.
func EncodeTextEffects(e models.TextEffects) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagEffects), encodeFont(e.Font))

	if e.JustifyHorizontal != "" || e.JustifyVertical != "" || e.Mirror {
		justify := sexp.NewList(sexp.Symbol(tagJustify))
		if e.JustifyHorizontal != "" {
			justify.Append(sexp.Symbol(e.JustifyHorizontal))
		}
		if e.JustifyVertical != "" {
			justify.Append(sexp.Symbol(e.JustifyVertical))
		}
		if e.Mirror {
			justify.Append(sexp.Symbol(tagMirror))
		}
		list.Append(justify)
	}

	if e.Hide {
		list.Append(sexp.Symbol(tagHide))
	}
	return list
}

func encodeFont(f models.Font) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagFont))
	if f.Face != "" {
		list.Append(sexp.NewList(sexp.Symbol(tagFace), sexp.String(f.Face)))
	}
	list.Append(sexp.NewList(sexp.Symbol(tagSize), sexp.Number(f.Height), sexp.Number(f.Width)))
	if f.Thickness != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagThickness), sexp.Number(*f.Thickness)))
	}
	if f.Bold {
		list.Append(sexp.Symbol(tagBold))
	}
	if f.Italic {
		list.Append(sexp.Symbol(tagItalic))
	}
	if f.LineSpacing != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagLineSpacing), sexp.Number(*f.LineSpacing)))
	}
	return list
}
