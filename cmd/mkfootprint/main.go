// Command mkfootprint generates an example 0603 resistor footprint and
// writes it as a .kicad_mod file. It doubles as a smoke test for the
// encode path: build the document in code, serialize, and inspect.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kicad-visualizer/backend/internal/fpio"
	"github.com/kicad-visualizer/backend/internal/models"
)

func main() {
	out := flag.String("o", "0603_example.kicad_mod", "output file path")
	flag.Parse()

	fp := build0603()

	fmt.Println("Generated footprint:")
	fmt.Println(fpio.Encode(fp))

	if err := fpio.WriteFile(*out, fp); err != nil {
		fmt.Printf("Failed to write footprint: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved footprint to %s\n", *out)
}

// build0603 creates a generic 1608 metric (0603 imperial) chip footprint
// with reference/value properties, a courtyard outline, silkscreen
// markings and two rounded SMD pads.
func build0603() *models.Footprint {
	refThickness := 0.15
	valThickness := 0.15
	rratio := 0.25

	return &models.Footprint{
		Name:             "0603",
		Version:          "20240108",
		Generator:        "pcbnew",
		GeneratorVersion: "8.0",
		Layer:            models.LayerFCu,
		Description:      "Generic 1608 (0603) package",
		Properties: []models.Property{
			{
				Key:   "Reference",
				Value: "REF**",
				Effects: &models.TextEffects{
					Font: models.Font{
						Face:      "KiCad",
						Height:    1.0,
						Width:     0.2,
						Thickness: &refThickness,
						Bold:      true,
					},
					JustifyHorizontal: models.JustifyLeft,
					JustifyVertical:   models.JustifyBottom,
				},
			},
			{
				Key:   "Value",
				Value: "0603",
				Effects: &models.TextEffects{
					Font: models.Font{
						Face:      "KiCad",
						Height:    1.0,
						Width:     0.2,
						Thickness: &valThickness,
					},
					JustifyHorizontal: models.JustifyLeft,
					JustifyVertical:   models.JustifyTop,
				},
			},
		},
		Polygons: []models.Polygon{
			{
				Points: []models.Point{
					{X: -0.8, Y: 0.4},
					{X: 0.8, Y: 0.4},
					{X: 0.8, Y: -0.4},
					{X: -0.8, Y: -0.4},
				},
				Stroke: &models.Stroke{Width: 0.05, Type: models.StrokeDefault},
				Fill:   models.FillOutline,
				Layer:  models.LayerFCrtYd,
			},
		},
		Lines: []models.Line{
			{
				Start:  models.Point{X: -0.3, Y: 0.2},
				End:    models.Point{X: 0.3, Y: 0.2},
				Stroke: models.Stroke{Width: 0.1, Type: models.StrokeDefault},
				Layer:  models.LayerFSilkS,
			},
			{
				Start:  models.Point{X: -0.3, Y: -0.2},
				End:    models.Point{X: 0.3, Y: -0.2},
				Stroke: models.Stroke{Width: 0.1, Type: models.StrokeDefault},
				Layer:  models.LayerFSilkS,
			},
		},
		Pads: []models.Pad{
			{
				Number:         "1",
				Type:           models.PadTypeSMD,
				Shape:          models.PadShapeRoundRect,
				At:             models.At(-0.75, 0),
				Size:           models.Size{Width: 0.6, Height: 0.6},
				Layers:         []models.Layer{models.LayerFCu, models.LayerFPaste, models.LayerFMask},
				RoundRectRatio: &rratio,
			},
			{
				Number:         "2",
				Type:           models.PadTypeSMD,
				Shape:          models.PadShapeRoundRect,
				At:             models.At(0.75, 0),
				Size:           models.Size{Width: 0.6, Height: 0.6},
				Layers:         []models.Layer{models.LayerFCu, models.LayerFPaste, models.LayerFMask},
				RoundRectRatio: &rratio,
			},
		},
	}
}
