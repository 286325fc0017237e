// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster renders PDF pages to bitmaps via MuPDF (go-fitz) and
// reads page counts with a plain PDF reader.
package raster

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements extract.Rasterizer using the MuPDF bindings.
type Fitz struct{}

// NewFitz constructs a MuPDF-backed rasterizer.
func NewFitz() *Fitz { return &Fitz{} }

// Pages renders every page of the PDF at pdfPath into a bitmap, in page
// order.
func (f *Fitz) Pages(ctx context.Context, pdfPath string) ([]image.Image, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	images := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.Image(i)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}
