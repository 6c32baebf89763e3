// Package fpio reads and writes .kicad_mod footprint files by chaining
// the generic S-expression tokenizer/emitter with the footprint codec.
package fpio

import (
	"fmt"
	"io"
	"os"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/parser"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

// Read decodes a footprint document from r.
func Read(r io.Reader) (*models.Footprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading footprint: %w", err)
	}
	return Decode(string(data))
}

// Decode decodes a footprint document from its text form.
func Decode(text string) (*models.Footprint, error) {
	node, err := sexp.ParseOne(text)
	if err != nil {
		return nil, fmt.Errorf("tokenizing footprint: %w", err)
	}
	return parser.DecodeFootprint(node)
}

// ReadFile decodes a footprint from a .kicad_mod file on disk.
func ReadFile(path string) (*models.Footprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening footprint file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Encode serializes a footprint to its indented text form.
func Encode(fp *models.Footprint) string {
	return sexp.FormatIndent(parser.EncodeFootprint(fp))
}

// Write serializes a footprint to w.
func Write(w io.Writer, fp *models.Footprint) error {
	_, err := io.WriteString(w, Encode(fp))
	return err
}

// WriteFile serializes a footprint to a .kicad_mod file on disk.
func WriteFile(path string, fp *models.Footprint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating footprint file: %w", err)
	}
	defer f.Close()

	if err := Write(f, fp); err != nil {
		return fmt.Errorf("writing footprint file: %w", err)
	}
	return nil
}
