// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr provides the Tesseract-backed recognizer. It requires the
// tesseract and leptonica C libraries at build and run time.
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/pdiddy/ocr-engine/pkg/types"
)

// Tesseract implements extract.Recognizer using the gosseract client. A
// fresh client is created per recognition so a failed call cannot poison
// later ones.
type Tesseract struct {
	cfg           types.OCRConfig
	clientFactory func() *gosseract.Client
}

// NewTesseract constructs a recognizer with the given OCR settings.
func NewTesseract(cfg types.OCRConfig) *Tesseract {
	return &Tesseract{cfg: cfg, clientFactory: gosseract.NewClient}
}

// Recognize runs OCR on encoded image bytes and returns the raw text.
func (t *Tesseract) Recognize(ctx context.Context, img []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := t.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(t.cfg.Languages) > 0 {
		if err := c.SetLanguage(t.cfg.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if t.cfg.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(t.cfg.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
