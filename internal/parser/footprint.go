// footprint.go - Aggregate footprint codec
package parser

import (
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagFootprint        = "footprint"
	tagVersion          = "version"
	tagGenerator        = "generator"
	tagGeneratorVersion = "generator_version"
	tagDescr            = "descr"
)

// DecodeFootprint decodes a complete (footprint ...) document in a
// single linear pass: six fixed header fields (name, version,
// generator, generator_version, layer, descr), then every remaining
// child dispatched by tag into the typed collections. The header is
// strict - any missing or malformed field aborts the decode. The body
// is lenient - children with unrecognized tags are silently skipped.
// Relative order of same-typed children is preserved.
func DecodeFootprint(n sexp.Node) (*models.Footprint, error) {
	list, err := expectList(n, tagFootprint)
	if err != nil {
		return nil, err
	}
	if list.Len() < 7 {
		return nil, truncated(tagFootprint, "header fields")
	}

	name, err := atomAt(list, 1, tagFootprint, "name")
	if err != nil {
		return nil, err
	}
	version, err := taggedString(list.Get(2), tagVersion)
	if err != nil {
		return nil, err
	}
	generator, err := taggedString(list.Get(3), tagGenerator)
	if err != nil {
		return nil, err
	}
	generatorVersion, err := taggedString(list.Get(4), tagGeneratorVersion)
	if err != nil {
		return nil, err
	}
	layer, err := decodeLayerNode(list.Get(5))
	if err != nil {
		return nil, err
	}
	description, err := taggedString(list.Get(6), tagDescr)
	if err != nil {
		return nil, err
	}

	fp := &models.Footprint{
		Name:             name,
		Version:          version,
		Generator:        generator,
		GeneratorVersion: generatorVersion,
		Layer:            layer,
		Description:      description,
		Properties:       make([]models.Property, 0),
	}

	for _, item := range list.Items[7:] {
		child, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := child.Tag(); tag {
		case tagProperty:
			prop, err := DecodeProperty(child)
			if err != nil {
				return nil, err
			}
			fp.Properties = append(fp.Properties, prop)
		case tagPoly:
			poly, err := DecodePolygon(child)
			if err != nil {
				return nil, err
			}
			fp.Polygons = append(fp.Polygons, poly)
		case tagLine:
			line, err := DecodeLine(child)
			if err != nil {
				return nil, err
			}
			fp.Lines = append(fp.Lines, line)
		case tagPad:
			pad, err := DecodePad(child)
			if err != nil {
				return nil, err
			}
			fp.Pads = append(fp.Pads, pad)
		}
	}
	return fp, nil
}

// EncodeFootprint encodes a footprint. The header keeps its fixed
// order; children are regrouped by type - properties, then polygons,
// then lines, then pads - regardless of how the source interleaved
// them, preserving within-group order.
func EncodeFootprint(fp *models.Footprint) *sexp.List {
	list := sexp.NewList(
		sexp.Symbol(tagFootprint),
		sexp.String(fp.Name),
		sexp.NewList(sexp.Symbol(tagVersion), sexp.String(fp.Version)),
		sexp.NewList(sexp.Symbol(tagGenerator), sexp.String(fp.Generator)),
		sexp.NewList(sexp.Symbol(tagGeneratorVersion), sexp.String(fp.GeneratorVersion)),
		encodeLayerNode(fp.Layer),
		sexp.NewList(sexp.Symbol(tagDescr), sexp.String(fp.Description)),
	)
	for _, prop := range fp.Properties {
		list.Append(EncodeProperty(prop))
	}
	for _, poly := range fp.Polygons {
		list.Append(EncodePolygon(poly))
	}
	for _, line := range fp.Lines {
		list.Append(EncodeLine(line))
	}
	for _, pad := range fp.Pads {
		list.Append(EncodePad(pad))
	}
	return list
}
