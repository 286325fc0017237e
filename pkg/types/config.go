package types

// OCRConfig holds settings passed to the text recognition engine.
type OCRConfig struct {
	// Languages is a list of Tesseract language codes (e.g. "eng", "deu")
	// used to select trained data.
	Languages []string `json:"languages" yaml:"languages"`

	// DPI is the effective dots-per-inch hint for recognition; zero means
	// unknown and lets the engine apply its own heuristics.
	DPI int `json:"dpi" yaml:"dpi"`
}

// RenderConfig holds settings for the reconstructed PDF output.
type RenderConfig struct {
	// BodySize is the font size in points for body paragraphs (default 11).
	BodySize float64 `json:"body_size" yaml:"body_size"`

	// HeadingSize is the font size in points for page headings (default 14).
	HeadingSize float64 `json:"heading_size" yaml:"heading_size"`
}

// Config is the top-level configuration for a run.
type Config struct {
	OCR    OCRConfig    `json:"ocr" yaml:"ocr"`
	Render RenderConfig `json:"render" yaml:"render"`
}

// DefaultConfig returns the configuration used when no config file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		OCR: OCRConfig{
			Languages: []string{"eng"},
		},
		Render: RenderConfig{
			BodySize:    11,
			HeadingSize: 14,
		},
	}
}
