package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kicad-visualizer/backend/internal/models"
)

// LoadLayerStyles parses a YAML layer-styles file mapping board layers
// to display colors. A missing file yields the built-in defaults.
func LoadLayerStyles(filePath string) (*models.LayerStyles, error) {
	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return DefaultLayerStyles(), nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadLayerStylesFromReader(file)
}

// LoadLayerStylesFromReader parses layer styles from an io.Reader.
func LoadLayerStylesFromReader(r io.Reader) (*models.LayerStyles, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var styles models.LayerStyles
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, err
	}

	return &styles, nil
}

// DefaultLayerStyles returns the standard front-layer palette used when
// no layer_styles.yaml is deployed.
func DefaultLayerStyles() *models.LayerStyles {
	return &models.LayerStyles{
		DefaultColor: "#808080",
		Layers: []models.LayerStyle{
			{Layer: string(models.LayerFCu), Color: "#C83434", Description: "Front copper"},
			{Layer: string(models.LayerFPaste), Color: "#A0A0A0", Description: "Front solder paste"},
			{Layer: string(models.LayerFMask), Color: "#840084", Description: "Front solder mask"},
			{Layer: string(models.LayerFSilkS), Color: "#F0F0F0", Description: "Front silkscreen"},
			{Layer: string(models.LayerFFab), Color: "#AFAF00", Description: "Front fabrication"},
			{Layer: string(models.LayerFCrtYd), Color: "#FF26E2", Description: "Front courtyard"},
			{Layer: string(models.LayerFAdhes), Color: "#8400D3", Description: "Front adhesive"},
		},
	}
}
