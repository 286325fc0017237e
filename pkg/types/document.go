// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// SourceKind identifies what kind of file a Document was extracted from.
type SourceKind string

const (
	SourceImage SourceKind = "image"
	SourcePDF   SourceKind = "pdf"
)

// pageDelimiter is the 50-character ruler that frames page headings in the
// flat text rendering. Page boundaries themselves are tracked as Page
// records; the ruler is presentation only.
var pageDelimiter = strings.Repeat("=", 50)

// Page holds the recognized text of a single source page.
type Page struct {
	// Number is the 1-based page number within a PDF source. Zero for
	// whole-image sources, which have no page structure.
	Number int `json:"number" yaml:"number"`

	// Text is the raw OCR output for the page.
	Text string `json:"text" yaml:"text"`
}

// Document is the in-memory result of extracting one input file. Pages are
// stored in source order; pages whose OCR output was empty or
// whitespace-only are never stored.
type Document struct {
	// SourcePath is the input file the text was extracted from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Kind records whether the source was a single image or a PDF.
	Kind SourceKind `json:"kind" yaml:"kind"`

	// Pages holds the per-page text in page order.
	Pages []Page `json:"pages" yaml:"pages"`
}

// Empty reports whether the document carries no non-whitespace text.
func (d Document) Empty() bool {
	for _, p := range d.Pages {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}

// Aggregate renders the document as a single flat string. Image sources
// yield their text verbatim. PDF sources wrap every page in a delimited
// heading block:
//
//	\n==================================================
//	Page N
//	==================================================
//	<text>\n
func (d Document) Aggregate() string {
	if d.Kind == SourceImage {
		if len(d.Pages) == 0 {
			return ""
		}
		return d.Pages[0].Text
	}

	var b strings.Builder
	for _, p := range d.Pages {
		fmt.Fprintf(&b, "\n%s\nPage %d\n%s\n%s\n", pageDelimiter, p.Number, pageDelimiter, p.Text)
	}
	return b.String()
}
