package models

// LayerStyles defines the YAML configuration for how the frontend draws
// each board layer. This mirrors the layer_styles.yaml reference format.
type LayerStyles struct {
	DefaultColor string       `json:"defaultColor" yaml:"default_color"`
	Layers       []LayerStyle `json:"layers" yaml:"layers"`
}

// LayerStyle maps one layer to its display settings.
type LayerStyle struct {
	Layer       string `json:"layer" yaml:"layer"`
	Color       string `json:"color" yaml:"color"` // Color name or hex
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Lookup returns the style for a layer, falling back to the default
// color when the layer has no explicit entry.
func (s *LayerStyles) Lookup(layer Layer) LayerStyle {
	for _, ls := range s.Layers {
		if ls.Layer == string(layer) {
			return ls
		}
	}
	return LayerStyle{Layer: string(layer), Color: s.DefaultColor}
}
