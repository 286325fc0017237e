// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns an input image or PDF into a types.Document by
// driving the recognition and rasterization backends. Backends are
// injected as interfaces so tests can supply fakes.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/ocr-engine/pkg/types"
)

// Recognizer converts one raster image into recognized text. Implementations
// wrap an OCR engine; the Tesseract-backed one lives in internal/ocr.
type Recognizer interface {
	// Recognize runs OCR on an encoded image (PNG or JPEG bytes) and
	// returns the raw recognized text.
	Recognize(ctx context.Context, img []byte) (string, error)
}

// Rasterizer renders the pages of a PDF into bitmaps, in page order.
type Rasterizer interface {
	Pages(ctx context.Context, pdfPath string) ([]image.Image, error)
}

// PageCounter reads the number of pages in a PDF without rasterizing it.
type PageCounter interface {
	Count(pdfPath string) (int, error)
}

// Image OCRs a whole image file and returns a single-page document. The
// page number is zero because image sources have no page structure.
func Image(ctx context.Context, rec Recognizer, path string) (types.Document, error) {
	doc := types.Document{SourcePath: path, Kind: types.SourceImage}

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("reading image %s: %w", path, err)
	}

	text, err := rec.Recognize(ctx, data)
	if err != nil {
		return doc, fmt.Errorf("recognizing %s: %w", path, err)
	}

	doc.Pages = []types.Page{{Number: 0, Text: text}}
	return doc, nil
}

// PDF rasterizes every page of a PDF and OCRs them sequentially in page
// order, printing progress to w. Pages whose recognized text is empty or
// whitespace-only are skipped with a warning. Any backend failure aborts
// the whole document.
func PDF(ctx context.Context, rec Recognizer, ras Rasterizer, counter PageCounter, path string, w io.Writer) (types.Document, error) {
	doc := types.Document{SourcePath: path, Kind: types.SourcePDF}

	total, err := counter.Count(path)
	if err != nil {
		return doc, fmt.Errorf("reading page count of %s: %w", path, err)
	}
	fmt.Fprintf(w, "Total pages in PDF: %d\n", total)

	fmt.Fprintln(w, "Converting PDF to images...")
	pages, err := ras.Pages(ctx, path)
	if err != nil {
		return doc, fmt.Errorf("rasterizing %s: %w", path, err)
	}

	for i, img := range pages {
		if err := ctx.Err(); err != nil {
			return doc, err
		}
		n := i + 1
		fmt.Fprintf(w, "Processing page %d of %d\n", n, len(pages))

		encoded, err := encodePNG(img)
		if err != nil {
			return doc, fmt.Errorf("encoding page %d: %w", n, err)
		}
		text, err := rec.Recognize(ctx, encoded)
		if err != nil {
			return doc, fmt.Errorf("recognizing page %d: %w", n, err)
		}

		if strings.TrimSpace(text) == "" {
			fmt.Fprintf(w, "Warning: No text extracted from page %d\n", n)
			continue
		}
		doc.Pages = append(doc.Pages, types.Page{Number: n, Text: text})
	}

	if doc.Empty() {
		fmt.Fprintln(w, "Warning: No text could be extracted from any page of the PDF")
	}
	return doc, nil
}

// encodePNG serializes a page bitmap for the recognizer.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
