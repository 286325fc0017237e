// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires validation, extraction, and output rendering into
// the single-file run the CLI exposes. Every failure is converted to a
// console message and a boolean outcome; no error escapes to the caller.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ocr-engine/internal/extract"
	"github.com/pdiddy/ocr-engine/internal/render"
	"github.com/pdiddy/ocr-engine/internal/validate"
	"github.com/pdiddy/ocr-engine/pkg/types"
)

// Pipeline holds the injected backends and configuration for one run.
type Pipeline struct {
	Recognizer extract.Recognizer
	Rasterizer extract.Rasterizer
	Counter    extract.PageCounter
	Config     types.Config

	// Out receives progress lines, warnings, and error diagnostics.
	Out io.Writer
}

// New constructs a pipeline around the given backends.
func New(rec extract.Recognizer, ras extract.Rasterizer, counter extract.PageCounter, cfg types.Config, out io.Writer) *Pipeline {
	return &Pipeline{
		Recognizer: rec,
		Rasterizer: ras,
		Counter:    counter,
		Config:     cfg,
		Out:        out,
	}
}

// OutputPath appends ".{format}" to output unless the path already ends
// with exactly that suffix.
func OutputPath(output, format string) string {
	suffix := "." + format
	if strings.HasSuffix(output, suffix) {
		return output
	}
	return output + suffix
}

// ProcessFile runs the whole pipeline for one input file: validation,
// extraction, and rendering to the output path. It reports success; every
// failure has already been printed to the pipeline's writer by the time it
// returns.
func (p *Pipeline) ProcessFile(ctx context.Context, input, output string) bool {
	if !validate.InputFile(input, p.Out) || !validate.OutputFile(output, p.Out) {
		return false
	}

	var doc types.Document
	switch {
	case validate.IsImage(input):
		d, err := extract.Image(ctx, p.Recognizer, input)
		if err != nil {
			fmt.Fprintf(p.Out, "Error processing image: %v\n", err)
			return false
		}
		doc = d
	case validate.IsPDF(input):
		d, err := extract.PDF(ctx, p.Recognizer, p.Rasterizer, p.Counter, input, p.Out)
		if err != nil {
			fmt.Fprintf(p.Out, "Error processing PDF: %v\n", err)
			return false
		}
		doc = d
	default:
		return false
	}

	if doc.Empty() {
		fmt.Fprintln(p.Out, "Error: No text could be extracted from the file.")
		return false
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".txt":
		if err := render.Text(doc, output); err != nil {
			fmt.Fprintf(p.Out, "Error saving text file: %v\n", err)
			return false
		}
	case ".pdf":
		if err := render.PDF(doc, output, p.Config.Render); err != nil {
			fmt.Fprintf(p.Out, "Error saving PDF file: %v\n", err)
			return false
		}
	default:
		return false
	}
	return true
}
