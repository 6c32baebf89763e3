// graphics.go - Polygon and line codecs
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagPoly = "fp_poly"
	tagLine = "fp_line"
	tagFill = "fill"
)

// DecodePolygon decodes an (fp_poly (pts ...) ...) node. The point list
// is positional and may be empty; the tail is scanned for the stroke,
// fill, layer and uuid in any order. Fill tolerates two encodings, a
// bare atom or a (fill V) wrapper, and defaults to solid. The layer is
// required and appears either as a bare atom or a (layer V) wrapper.
func DecodePolygon(n sexp.Node) (models.Polygon, error) {
	list, err := expectList(n, tagPoly)
	if err != nil {
		return models.Polygon{}, err
	}
	if list.Len() < 2 {
		return models.Polygon{}, truncated(tagPoly, "point list")
	}

	points, err := DecodePoints(list.Get(1))
	if err != nil {
		return models.Polygon{}, err
	}

	poly := models.Polygon{Points: points, Fill: models.FillSolid}
	layerSeen := false

	for _, item := range list.Items[2:] {
		if text, ok := sexp.AtomText(item); ok {
			// A bare atom is either a fill token or a layer token.
			if fill, err := models.LookupFillMode(text); err == nil {
				poly.Fill = fill
				continue
			}
			layer, err := models.LookupLayer(text)
			if err != nil {
				return models.Polygon{}, invalidEnum(tagPoly, err)
			}
			poly.Layer = layer
			layerSeen = true
			continue
		}

		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagStroke:
			stroke, err := DecodeStroke(sub)
			if err != nil {
				return models.Polygon{}, err
			}
			poly.Stroke = &stroke
		case tagFill:
			token, err := taggedString(sub, tagFill)
			if err != nil {
				return models.Polygon{}, err
			}
			fill, err := models.LookupFillMode(token)
			if err != nil {
				return models.Polygon{}, invalidEnum(tagFill, err)
			}
			poly.Fill = fill
		case tagLayer:
			layer, err := decodeLayerNode(sub)
			if err != nil {
				return models.Polygon{}, err
			}
			poly.Layer = layer
			layerSeen = true
		case tagUUID:
			id, err := DecodeUUID(sub)
			if err != nil {
				return models.Polygon{}, err
			}
			poly.UUID = id
		}
	}

	if !layerSeen {
		return models.Polygon{}, truncated(tagPoly, "layer")
	}
	return poly, nil
}

// EncodePolygon encodes a polygon. Field order is fixed: points,
// stroke, fill, layer, uuid. Fill and layer are emitted as bare atoms,
// matching the positional form pcbnew writes.
func EncodePolygon(p models.Polygon) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagPoly), EncodePoints(p.Points))
	if p.Stroke != nil {
		list.Append(EncodeStroke(*p.Stroke))
	}
	list.Append(sexp.Symbol(p.Fill))
	list.Append(sexp.String(p.Layer))
	if p.UUID != "" {
		list.Append(EncodeUUID(p.UUID))
	}
	return list
}

// DecodeLine decodes an (fp_line ...) node. Start, end, stroke and
// layer are all required; the tail scan accepts them in any order.
func DecodeLine(n sexp.Node) (models.Line, error) {
	list, err := expectList(n, tagLine)
	if err != nil {
		return models.Line{}, err
	}

	var line models.Line
	var startSeen, endSeen, strokeSeen, layerSeen bool

	for _, item := range list.Items[1:] {
		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagStart:
			pt, err := decodeXY(sub, tagStart)
			if err != nil {
				return models.Line{}, err
			}
			line.Start = pt
			startSeen = true
		case tagEnd:
			pt, err := decodeXY(sub, tagEnd)
			if err != nil {
				return models.Line{}, err
			}
			line.End = pt
			endSeen = true
		case tagStroke:
			stroke, err := DecodeStroke(sub)
			if err != nil {
				return models.Line{}, err
			}
			line.Stroke = stroke
			strokeSeen = true
		case tagLayer:
			layer, err := decodeLayerNode(sub)
			if err != nil {
				return models.Line{}, err
			}
			line.Layer = layer
			layerSeen = true
		case tagUUID:
			id, err := DecodeUUID(sub)
			if err != nil {
				return models.Line{}, err
			}
			line.UUID = id
		}
	}

	switch {
	case !startSeen:
		return models.Line{}, truncated(tagLine, "start point")
	case !endSeen:
		return models.Line{}, truncated(tagLine, "end point")
	case !strokeSeen:
		return models.Line{}, truncated(tagLine, "stroke")
	case !layerSeen:
		return models.Line{}, truncated(tagLine, "layer")
	}
	return line, nil
}

// EncodeLine encodes a line. Field order is fixed: start, end, stroke,
// layer, uuid.
func EncodeLine(l models.Line) *sexp.List {
	list := sexp.NewList(
		sexp.Symbol(tagLine),
		encodeXY(tagStart, l.Start),
		encodeXY(tagEnd, l.End),
		EncodeStroke(l.Stroke),
		encodeLayerNode(l.Layer),
	)
	if l.UUID != "" {
		list.Append(EncodeUUID(l.UUID))
	}
	return list
}
