// pad.go - Pad codec
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagPad                = "pad"
	tagLayers             = "layers"
	tagRoundRectRatio     = "roundrect_rratio"
	tagSolderMaskMargin   = "solder_mask_margin"
	tagThermalBridgeAngle = "thermal_bridge_angle"
)

// DecodePad decodes a (pad "N" TYPE SHAPE ...) node. Number, type and
// shape are positional; the tail is scanned for at, size, layers and
// the optional numeric attributes. Position, size and at least one
// layer are required.
func DecodePad(n sexp.Node) (models.Pad, error) {
	list, err := expectList(n, tagPad)
	if err != nil {
		return models.Pad{}, err
	}
	if list.Len() < 4 {
		return models.Pad{}, truncated(tagPad, "number, type and shape")
	}

	number, err := atomAt(list, 1, tagPad, "number")
	if err != nil {
		return models.Pad{}, err
	}
	padType, err := atomAt(list, 2, tagPad, "type")
	if err != nil {
		return models.Pad{}, err
	}
	shape, err := atomAt(list, 3, tagPad, "shape")
	if err != nil {
		return models.Pad{}, err
	}

	pad := models.Pad{Number: number, Type: padType, Shape: shape}
	var atSeen, sizeSeen bool

	for _, item := range list.Items[4:] {
		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagAt:
			pos, err := DecodePosition(sub)
			if err != nil {
				return models.Pad{}, err
			}
			pad.At = pos
			atSeen = true
		case tagSize:
			pt, err := decodeXY(sub, tagSize)
			if err != nil {
				return models.Pad{}, err
			}
			pad.Size = models.Size{Width: pt.X, Height: pt.Y}
			sizeSeen = true
		case tagLayers:
			layers, err := decodePadLayers(sub)
			if err != nil {
				return models.Pad{}, err
			}
			pad.Layers = layers
		case tagRoundRectRatio:
			v, err := taggedFloat(sub, tagRoundRectRatio)
			if err != nil {
				return models.Pad{}, err
			}
			pad.RoundRectRatio = &v
		case tagSolderMaskMargin:
			v, err := taggedFloat(sub, tagSolderMaskMargin)
			if err != nil {
				return models.Pad{}, err
			}
			pad.SolderMaskMargin = &v
		case tagThermalBridgeAngle:
			v, err := taggedFloat(sub, tagThermalBridgeAngle)
			if err != nil {
				return models.Pad{}, err
			}
			pad.ThermalBridgeAngle = &v
		case tagUUID:
			id, err := DecodeUUID(sub)
			if err != nil {
				return models.Pad{}, err
			}
			pad.UUID = id
		}
	}

	switch {
	case !atSeen:
		return models.Pad{}, truncated(tagPad, "position")
	case !sizeSeen:
		return models.Pad{}, truncated(tagPad, "size")
	case len(pad.Layers) == 0:
		return models.Pad{}, truncated(tagPad, "layers")
	}
	return pad, nil
}

// decodePadLayers decodes a (layers L L ...) node, preserving the
// declaration order. At least one layer is required.
func decodePadLayers(list *sexp.List) ([]models.Layer, error) {
	if list.Len() < 2 {
		return nil, truncated(tagLayers, "at least one layer")
	}
	layers := make([]models.Layer, 0, list.Len()-1)
	for i := 1; i < list.Len(); i++ {
		token, err := atomAt(list, i, tagLayers, "layer")
		if err != nil {
			return nil, err
		}
		layer, err := models.LookupLayer(token)
		if err != nil {
			return nil, invalidEnum(tagLayers, err)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// EncodePad encodes a pad. Field order is fixed: number, type, shape,
// at, size, layers, roundrect ratio, solder-mask margin, thermal
// bridge angle, uuid.
func EncodePad(p models.Pad) *sexp.List {
	layers := sexp.NewList(sexp.Symbol(tagLayers))
	for _, layer := range p.Layers {
		layers.Append(sexp.String(layer))
	}

	list := sexp.NewList(
		sexp.Symbol(tagPad),
		sexp.String(p.Number),
		sexp.Symbol(p.Type),
		sexp.Symbol(p.Shape),
		EncodePosition(p.At),
		sexp.NewList(sexp.Symbol(tagSize), sexp.Number(p.Size.Width), sexp.Number(p.Size.Height)),
		layers,
	)
	if p.RoundRectRatio != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagRoundRectRatio), sexp.Number(*p.RoundRectRatio)))
	}
	if p.SolderMaskMargin != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagSolderMaskMargin), sexp.Number(*p.SolderMaskMargin)))
	}
	if p.ThermalBridgeAngle != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagThermalBridgeAngle), sexp.Number(*p.ThermalBridgeAngle)))
	}
	if p.UUID != "" {
		list.Append(EncodeUUID(p.UUID))
	}
	return list
}
