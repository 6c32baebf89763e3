package parser

import (
	"testing"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

func TestDecodePageStandardSize(t *testing.T) {
	page, err := DecodePageSettings(mustParse(t, `(paper A4)`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if page.Size != models.PaperA4 || page.Custom() {
		t.Errorf("Expected standard A4 page, got %+v", page)
	}
	if page.Portrait {
		t.Error("Expected landscape default")
	}
}

func TestDecodePageStandardPortrait(t *testing.T) {
	page, err := DecodePageSettings(mustParse(t, `(paper A4 portrait)`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !page.Portrait {
		t.Error("Expected portrait flag")
	}
}

func TestDecodePageCustomSize(t *testing.T) {
	page, err := DecodePageSettings(mustParse(t, `(paper 200 150)`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !page.Custom() {
		t.Fatalf("Expected custom page, got %+v", page)
	}
	if page.Width != 200 || page.Height != 150 {
		t.Errorf("Unexpected dimensions: %v x %v", page.Width, page.Height)
	}
}

func TestDecodePageErrors(t *testing.T) {
	_, err := DecodePageSettings(mustParse(t, `(paper)`))
	wantKind(t, err, ErrTruncated)

	_, err = DecodePageSettings(mustParse(t, `(paper Letter)`))
	wantKind(t, err, ErrInvalidEnumValue)

	// A lone number is neither a standard token nor a full custom pair.
	_, err = DecodePageSettings(mustParse(t, `(paper 200)`))
	wantKind(t, err, ErrInvalidEnumValue)

	_, err = DecodePageSettings(mustParse(t, `(paper A4 portrait extra)`))
	wantKind(t, err, ErrInvalidShape)

	// Non-positive custom dimensions fail the construction invariant.
	_, err = DecodePageSettings(mustParse(t, `(paper 200 -5)`))
	if err == nil || KindOf(err) != "" {
		t.Errorf("Expected plain validation error, got %v", err)
	}
}

func TestEncodePageSettings(t *testing.T) {
	got := sexp.Format(EncodePageSettings(models.PageSettings{Size: models.PaperA3}))
	if got != "(paper A3)" {
		t.Errorf("Unexpected encoding: %s", got)
	}

	got = sexp.Format(EncodePageSettings(models.PageSettings{Width: 200, Height: 150, Portrait: true}))
	if got != "(paper 200 150 portrait)" {
		t.Errorf("Unexpected encoding: %s", got)
	}
}

func TestDecodeImage(t *testing.T) {
	src := `(image (at 2 3) (scale 0.5) (layer "F.SilkS") (uuid "` + testUUID + `") (data "iVBORw0KGgo="))`
	img, err := DecodeImage(mustParse(t, src))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if img.At.X != 2 || img.At.Y != 3 {
		t.Errorf("Unexpected position: %+v", img.At)
	}
	if img.Scale == nil || *img.Scale != 0.5 {
		t.Errorf("Unexpected scale: %v", img.Scale)
	}
	if img.Layer != models.LayerFSilkS {
		t.Errorf("Unexpected layer: %s", img.Layer)
	}
	if img.Data != "iVBORw0KGgo=" {
		t.Errorf("Payload should be carried verbatim, got %q", img.Data)
	}
}

func TestDecodeImageRequiredComponents(t *testing.T) {
	cases := []string{
		`(image (uuid "` + testUUID + `") (data "x"))`,
		`(image (at 0 0) (data "x"))`,
		`(image (at 0 0) (uuid "` + testUUID + `"))`,
	}
	for _, src := range cases {
		_, err := DecodeImage(mustParse(t, src))
		wantKind(t, err, ErrTruncated)
	}
}

func TestDecodeImageScaleInvariant(t *testing.T) {
	src := `(image (at 0 0) (scale -1) (uuid "` + testUUID + `") (data "x"))`
	_, err := DecodeImage(mustParse(t, src))
	if err == nil || KindOf(err) != "" {
		t.Errorf("Expected plain validation error, got %v", err)
	}
}

func TestEncodeImage(t *testing.T) {
	img := models.Image{
		At:   models.At(2, 3),
		UUID: testUUID,
		Data: "payload",
	}
	got := sexp.Format(EncodeImage(img))
	want := `(image (at 2 3) (uuid "` + testUUID + `") (data "payload"))`
	if got != want {
		t.Errorf("Unexpected encoding:\ngot  %s\nwant %s", got, want)
	}
}
