// Package models contains the typed footprint domain records and the
// closed vocabularies their enumerated fields draw from.
package models

import "fmt"

// Layer identifies a board layer. The set is closed: lookups are
// exact-string and case-sensitive, with no aliasing.
type Layer string

const (
	LayerFCu    Layer = "F.Cu"
	LayerFPaste Layer = "F.Paste"
	LayerFMask  Layer = "F.Mask"
	LayerFSilkS Layer = "F.SilkS"
	LayerFFab   Layer = "F.Fab"
	LayerFCrtYd Layer = "F.CrtYd"
	LayerFAdhes Layer = "F.Adhes"
)

var layers = map[string]Layer{
	string(LayerFCu):    LayerFCu,
	string(LayerFPaste): LayerFPaste,
	string(LayerFMask):  LayerFMask,
	string(LayerFSilkS): LayerFSilkS,
	string(LayerFFab):   LayerFFab,
	string(LayerFCrtYd): LayerFCrtYd,
	string(LayerFAdhes): LayerFAdhes,
}

// LookupLayer resolves a layer token against the closed vocabulary.
func LookupLayer(name string) (Layer, error) {
	l, ok := layers[name]
	if !ok {
		return "", fmt.Errorf("%q is not a valid layer", name)
	}
	return l, nil
}

// StrokeType enumerates line drawing styles. dash_dot_dot exists from
// format version 7 on.
type StrokeType string

const (
	StrokeDefault    StrokeType = "default"
	StrokeSolid      StrokeType = "solid"
	StrokeDash       StrokeType = "dash"
	StrokeDot        StrokeType = "dot"
	StrokeDashDot    StrokeType = "dash_dot"
	StrokeDashDotDot StrokeType = "dash_dot_dot"
)

var strokeTypes = map[string]StrokeType{
	string(StrokeDefault):    StrokeDefault,
	string(StrokeSolid):      StrokeSolid,
	string(StrokeDash):       StrokeDash,
	string(StrokeDot):        StrokeDot,
	string(StrokeDashDot):    StrokeDashDot,
	string(StrokeDashDotDot): StrokeDashDotDot,
}

// LookupStrokeType resolves a stroke type token.
func LookupStrokeType(name string) (StrokeType, error) {
	t, ok := strokeTypes[name]
	if !ok {
		return "", fmt.Errorf("%q is not a valid stroke type", name)
	}
	return t, nil
}

// FillMode enumerates polygon fill styles.
type FillMode string

const (
	FillSolid   FillMode = "solid"
	FillOutline FillMode = "outline"
	FillNone    FillMode = "none"
)

var fillModes = map[string]FillMode{
	string(FillSolid):   FillSolid,
	string(FillOutline): FillOutline,
	string(FillNone):    FillNone,
}

// LookupFillMode resolves a fill token.
func LookupFillMode(name string) (FillMode, error) {
	f, ok := fillModes[name]
	if !ok {
		return "", fmt.Errorf("%q is not a valid fill type", name)
	}
	return f, nil
}

// PaperSize enumerates the standard page sizes accepted by (paper ...).
// Custom pages carry an explicit width/height pair instead.
type PaperSize string

const (
	PaperA0 PaperSize = "A0"
	PaperA1 PaperSize = "A1"
	PaperA2 PaperSize = "A2"
	PaperA3 PaperSize = "A3"
	PaperA4 PaperSize = "A4"
	PaperA5 PaperSize = "A5"
	PaperA  PaperSize = "A"
	PaperB  PaperSize = "B"
	PaperC  PaperSize = "C"
	PaperD  PaperSize = "D"
	PaperE  PaperSize = "E"
)

var paperSizes = map[string]PaperSize{
	string(PaperA0): PaperA0,
	string(PaperA1): PaperA1,
	string(PaperA2): PaperA2,
	string(PaperA3): PaperA3,
	string(PaperA4): PaperA4,
	string(PaperA5): PaperA5,
	string(PaperA):  PaperA,
	string(PaperB):  PaperB,
	string(PaperC):  PaperC,
	string(PaperD):  PaperD,
	string(PaperE):  PaperE,
}

// LookupPaperSize resolves a paper size token.
func LookupPaperSize(name string) (PaperSize, error) {
	p, ok := paperSizes[name]
	if !ok {
		return "", fmt.Errorf("%q is not a valid paper size", name)
	}
	return p, nil
}

// Pad type and shape tokens commonly seen in footprint files. Pads keep
// these as plain strings on the record; the constants cover the values
// the example builder and tests use.
const (
	PadTypeSMD      = "smd"
	PadTypeThruHole = "thru_hole"

	PadShapeCircle    = "circle"
	PadShapeRect      = "rect"
	PadShapeOval      = "oval"
	PadShapeRoundRect = "roundrect"
)
