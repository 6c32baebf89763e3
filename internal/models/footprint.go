package models

import "fmt"

// Point is an X/Y coordinate pair in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position is a placement identifier: X, Y and an optional rotation
// angle. A nil angle and a zero angle serialize differently ((at x y)
// vs (at x y 0)), so the distinction is kept.
type Position struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Angle *float64 `json:"angle,omitempty"`
}

// At builds a position without an angle.
func At(x, y float64) Position {
	return Position{X: x, Y: y}
}

// AtAngle builds a position with an explicit rotation angle.
func AtAngle(x, y, angle float64) Position {
	return Position{X: x, Y: y, Angle: &angle}
}

// Color is an RGBA quadruple with 0-255 channels.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// Stroke describes how an outline is drawn.
type Stroke struct {
	Width float64    `json:"width"`
	Type  StrokeType `json:"type"`
	Color *Color     `json:"color,omitempty"`
}

// NewStroke builds a stroke with the default solid type.
func NewStroke(width float64) Stroke {
	return Stroke{Width: width, Type: StrokeSolid}
}

// Validate checks the stroke invariants.
func (s *Stroke) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("stroke width must be non-negative")
	}
	return nil
}

// Font holds the text rendering settings inside an effects block.
// Height and width default to 1.0 when the size tag is absent.
type Font struct {
	Face        string   `json:"face,omitempty"`
	Height      float64  `json:"height"`
	Width       float64  `json:"width"`
	Thickness   *float64 `json:"thickness,omitempty"`
	Bold        bool     `json:"bold,omitempty"`
	Italic      bool     `json:"italic,omitempty"`
	LineSpacing *float64 `json:"lineSpacing,omitempty"`
}

// DefaultFont returns a font with the 1.0 x 1.0 default size.
func DefaultFont() Font {
	return Font{Height: 1.0, Width: 1.0}
}

// Validate checks that all size-like fields are non-negative.
func (f *Font) Validate() error {
	if f.Height < 0 || f.Width < 0 {
		return fmt.Errorf("font size must be non-negative")
	}
	if f.Thickness != nil && *f.Thickness < 0 {
		return fmt.Errorf("font thickness must be non-negative")
	}
	if f.LineSpacing != nil && *f.LineSpacing < 0 {
		return fmt.Errorf("font line spacing must be non-negative")
	}
	return nil
}

// Horizontal and vertical justification tokens.
const (
	JustifyLeft   = "left"
	JustifyRight  = "right"
	JustifyTop    = "top"
	JustifyBottom = "bottom"
)

// TextEffects groups font and justification settings for a text item.
type TextEffects struct {
	Font              Font   `json:"font"`
	JustifyHorizontal string `json:"justifyHorizontal,omitempty"` // left or right
	JustifyVertical   string `json:"justifyVertical,omitempty"`   // top or bottom
	Mirror            bool   `json:"mirror,omitempty"`
	Hide              bool   `json:"hide,omitempty"`
}

// Property is a named key/value pair attached to a footprint, such as
// Reference or Value, with optional placement and text effects.
type Property struct {
	Key      string       `json:"key"`
	Value    string       `json:"value"`
	At       *Position    `json:"at,omitempty"`
	Layer    Layer        `json:"layer,omitempty"`
	Effects  *TextEffects `json:"effects,omitempty"`
	Unlocked bool         `json:"unlocked,omitempty"`
	Hide     bool         `json:"hide,omitempty"`
	UUID     string       `json:"uuid,omitempty"`
}

// Polygon is a closed graphic area on a single layer. Point order
// defines the winding; an empty point list is structurally valid even
// though it is geometrically degenerate.
type Polygon struct {
	Points []Point  `json:"points"`
	Stroke *Stroke  `json:"stroke,omitempty"`
	Fill   FillMode `json:"fill"`
	Layer  Layer    `json:"layer"`
	UUID   string   `json:"uuid,omitempty"`
}

// Line is a graphic segment between two points on a single layer.
type Line struct {
	Start  Point  `json:"start"`
	End    Point  `json:"end"`
	Stroke Stroke `json:"stroke"`
	Layer  Layer  `json:"layer"`
	UUID   string `json:"uuid,omitempty"`
}

// Size is a width/height pair in millimeters.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pad is a copper pad. Layers preserve declaration order.
type Pad struct {
	Number             string   `json:"number"`
	Type               string   `json:"type"`
	Shape              string   `json:"shape"`
	At                 Position `json:"at"`
	Size               Size     `json:"size"`
	Layers             []Layer  `json:"layers"`
	RoundRectRatio     *float64 `json:"roundrectRatio,omitempty"`
	SolderMaskMargin   *float64 `json:"solderMaskMargin,omitempty"`
	ThermalBridgeAngle *float64 `json:"thermalBridgeAngle,omitempty"`
	UUID               string   `json:"uuid,omitempty"`
}

// Footprint is the aggregate document. Each child collection preserves
// the relative order of same-typed children from the source file;
// cross-type interleaving is not preserved on re-encode.
type Footprint struct {
	Name             string     `json:"name"`
	Version          string     `json:"version"`
	Generator        string     `json:"generator"`
	GeneratorVersion string     `json:"generatorVersion"`
	Layer            Layer      `json:"layer"`
	Description      string     `json:"description"`
	Properties       []Property `json:"properties"`
	Polygons         []Polygon  `json:"polygons,omitempty"`
	Lines            []Line     `json:"lines,omitempty"`
	Pads             []Pad      `json:"pads,omitempty"`
}

// PageSettings describes the drawing sheet: either a standard paper
// size or an explicit width/height pair, plus orientation.
type PageSettings struct {
	Size     PaperSize `json:"size,omitempty"`
	Width    float64   `json:"width,omitempty"`
	Height   float64   `json:"height,omitempty"`
	Portrait bool      `json:"portrait,omitempty"`
}

// Custom reports whether the page uses an explicit width/height pair.
func (p *PageSettings) Custom() bool { return p.Size == "" }

// Validate checks that a custom page carries strictly positive
// dimensions.
func (p *PageSettings) Validate() error {
	if p.Custom() && (p.Width <= 0 || p.Height <= 0) {
		return fmt.Errorf("invalid numeric values in page settings")
	}
	return nil
}

// Image is an embedded bitmap. The payload is opaque base64 text and is
// never decoded.
type Image struct {
	At    Position `json:"at"`
	Scale *float64 `json:"scale,omitempty"`
	Layer Layer    `json:"layer,omitempty"`
	UUID  string   `json:"uuid"`
	Data  string   `json:"data"`
}

// Validate checks the image invariants.
func (i *Image) Validate() error {
	if i.Scale != nil && *i.Scale <= 0 {
		return fmt.Errorf("scale must be positive")
	}
	return nil
}
