// property.go - Footprint property codec
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagProperty = "property"
	tagLayer    = "layer"
	tagUnlocked = "unlocked"
)

// decodeLayerNode decodes a (layer "F.Cu") wrapper against the closed
// layer vocabulary.
func decodeLayerNode(n sexp.Node) (models.Layer, error) {
	token, err := taggedString(n, tagLayer)
	if err != nil {
		return "", err
	}
	layer, err := models.LookupLayer(token)
	if err != nil {
		return "", invalidEnum(tagLayer, err)
	}
	return layer, nil
}

func encodeLayerNode(layer models.Layer) *sexp.List {
	return sexp.NewList(sexp.Symbol(tagLayer), sexp.String(layer))
}

// DecodeProperty decodes a (property "Key" "Value" ...) node. Key and
// value are positional; the tail is scanned for at, layer, uuid and
// effects sub-nodes plus the unlocked and hide flags. Properties are
// strict about bare atoms: anything other than the two known flags is
// rejected. Duplicate optional tags are last-wins.
func DecodeProperty(n sexp.Node) (models.Property, error) {
	list, err := expectList(n, tagProperty)
	if err != nil {
		return models.Property{}, err
	}
	if list.Len() < 3 {
		return models.Property{}, truncated(tagProperty, "key and value")
	}

	key, err := atomAt(list, 1, tagProperty, "key")
	if err != nil {
		return models.Property{}, err
	}
	value, err := atomAt(list, 2, tagProperty, "value")
	if err != nil {
		return models.Property{}, err
	}

	prop := models.Property{Key: key, Value: value}
	for _, item := range list.Items[3:] {
		if text, ok := sexp.AtomText(item); ok {
			switch text {
			case tagUnlocked:
				prop.Unlocked = true
			case tagHide:
				prop.Hide = true
			default:
				return models.Property{}, invalidShape(tagProperty, "invalid optional field format: "+text)
			}
			continue
		}

		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagAt:
			pos, err := DecodePosition(sub)
			if err != nil {
				return models.Property{}, err
			}
			prop.At = &pos
		case tagLayer:
			layer, err := decodeLayerNode(sub)
			if err != nil {
				return models.Property{}, err
			}
			prop.Layer = layer
		case tagUUID:
			id, err := DecodeUUID(sub)
			if err != nil {
				return models.Property{}, err
			}
			prop.UUID = id
		case tagEffects:
			effects, err := DecodeTextEffects(sub)
			if err != nil {
				return models.Property{}, err
			}
			prop.Effects = &effects
		}
	}
	return prop, nil
}

// EncodeProperty encodes a property. Field order is fixed: key, value,
// at, unlocked flag, layer, hide flag, uuid, effects.
func EncodeProperty(p models.Property) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagProperty), sexp.String(p.Key), sexp.String(p.Value))
	if p.At != nil {
		list.Append(EncodePosition(*p.At))
	}
	if p.Unlocked {
		list.Append(sexp.Symbol(tagUnlocked))
	}
	if p.Layer != "" {
		list.Append(encodeLayerNode(p.Layer))
	}
	if p.Hide {
		list.Append(sexp.Symbol(tagHide))
	}
	if p.UUID != "" {
		list.Append(EncodeUUID(p.UUID))
	}
	if p.Effects != nil {
		list.Append(EncodeTextEffects(*p.Effects))
	}
	return list
}
