// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Counter implements extract.PageCounter. It parses the PDF structure
// without rasterizing, which also rejects non-PDF input before any page
// rendering work starts.
type Counter struct{}

// NewCounter constructs a page counter.
func NewCounter() *Counter { return &Counter{} }

// Count returns the number of pages in the PDF at pdfPath.
func (Counter) Count(pdfPath string) (int, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()
	return r.NumPage(), nil
}
