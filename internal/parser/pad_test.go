package parser

import (
	"testing"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

func TestDecodePadRoundRect(t *testing.T) {
	src := `(pad "1" smd roundrect (at -0.7625 0 90) (size 0.9 0.8) ` +
		`(layers "F.Cu" "F.Paste" "F.Mask") (roundrect_rratio 0.25) (uuid "` + testUUID + `"))`
	pad, err := DecodePad(mustParse(t, src))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if pad.Number != "1" || pad.Type != models.PadTypeSMD || pad.Shape != models.PadShapeRoundRect {
		t.Errorf("Unexpected header fields: %+v", pad)
	}
	if pad.At.X != -0.7625 || pad.At.Angle == nil || *pad.At.Angle != 90 {
		t.Errorf("Unexpected position: %+v", pad.At)
	}
	if pad.Size.Width != 0.9 || pad.Size.Height != 0.8 {
		t.Errorf("Unexpected size: %+v", pad.Size)
	}
	if len(pad.Layers) != 3 || pad.Layers[0] != models.LayerFCu || pad.Layers[2] != models.LayerFMask {
		t.Errorf("Layer order not preserved: %v", pad.Layers)
	}
	if pad.RoundRectRatio == nil || *pad.RoundRectRatio != 0.25 {
		t.Errorf("Unexpected roundrect ratio: %v", pad.RoundRectRatio)
	}
	if pad.UUID != testUUID {
		t.Errorf("Unexpected uuid: %s", pad.UUID)
	}
}

func TestDecodePadOptionalNumericAttributes(t *testing.T) {
	src := `(pad "2" thru_hole circle (at 0 0) (size 1 1) (layers "F.Cu") ` +
		`(solder_mask_margin 0.1) (thermal_bridge_angle 45))`
	pad, err := DecodePad(mustParse(t, src))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if pad.SolderMaskMargin == nil || *pad.SolderMaskMargin != 0.1 {
		t.Errorf("Unexpected solder mask margin: %v", pad.SolderMaskMargin)
	}
	if pad.ThermalBridgeAngle == nil || *pad.ThermalBridgeAngle != 45 {
		t.Errorf("Unexpected thermal bridge angle: %v", pad.ThermalBridgeAngle)
	}
	if pad.RoundRectRatio != nil {
		t.Errorf("Expected unset roundrect ratio, got %v", *pad.RoundRectRatio)
	}
}

func TestDecodePadErrors(t *testing.T) {
	_, err := DecodePad(mustParse(t, `(pad "1" smd)`))
	wantKind(t, err, ErrTruncated)

	// Missing position
	_, err = DecodePad(mustParse(t, `(pad "1" smd rect (size 1 1) (layers "F.Cu"))`))
	wantKind(t, err, ErrTruncated)

	// Missing size
	_, err = DecodePad(mustParse(t, `(pad "1" smd rect (at 0 0) (layers "F.Cu"))`))
	wantKind(t, err, ErrTruncated)

	// Missing layers
	_, err = DecodePad(mustParse(t, `(pad "1" smd rect (at 0 0) (size 1 1))`))
	wantKind(t, err, ErrTruncated)

	// Empty layers node
	_, err = DecodePad(mustParse(t, `(pad "1" smd rect (at 0 0) (size 1 1) (layers))`))
	wantKind(t, err, ErrTruncated)

	// Unknown layer token
	_, err = DecodePad(mustParse(t, `(pad "1" smd rect (at 0 0) (size 1 1) (layers "B.Cu"))`))
	wantKind(t, err, ErrInvalidEnumValue)
}

func TestEncodePad(t *testing.T) {
	rratio := 0.25
	pad := models.Pad{
		Number:         "1",
		Type:           models.PadTypeSMD,
		Shape:          models.PadShapeRoundRect,
		At:             models.At(-0.75, 0),
		Size:           models.Size{Width: 0.6, Height: 0.6},
		Layers:         []models.Layer{models.LayerFCu, models.LayerFPaste, models.LayerFMask},
		RoundRectRatio: &rratio,
	}

	got := sexp.Format(EncodePad(pad))
	want := `(pad "1" smd roundrect (at -0.75 0) (size 0.6 0.6) ` +
		`(layers "F.Cu" "F.Paste" "F.Mask") (roundrect_rratio 0.25))`
	if got != want {
		t.Errorf("Unexpected encoding:\ngot  %s\nwant %s", got, want)
	}
}

func TestPadRoundTrip(t *testing.T) {
	src := `(pad "7" smd oval (at 1.25 -0.5 270) (size 0.4 1.2) (layers "F.Cu" "F.Mask") (solder_mask_margin 0.05))`
	pad, err := DecodePad(mustParse(t, src))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if got := sexp.Format(EncodePad(pad)); got != src {
		t.Errorf("Round trip mismatch:\ngot  %s\nwant %s", got, src)
	}
}
