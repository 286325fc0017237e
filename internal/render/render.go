// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes an extracted document to disk, either verbatim as
// UTF-8 text or re-flowed into a paragraph-styled PDF. The PDF path drops
// all non-ASCII characters; this lossy behavior is intentional (the
// built-in PDF fonts cover Latin-1 only) and mirrors the text cleaning the
// tool has always done.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/ocr-engine/pkg/types"
)

// Fixed page geometry for reconstructed PDFs: US letter with one-inch
// margins all around.
const pageMargin = 72

// flowKind tags one directive in the layout story.
type flowKind int

const (
	flowHeading flowKind = iota
	flowBody
	flowPageBreak
)

// flowable is a single layout directive: a styled paragraph or a page
// break.
type flowable struct {
	kind flowKind
	text string
}

// Text writes the document's flat aggregate string to path as UTF-8,
// byte-for-byte.
func Text(doc types.Document, path string) error {
	if err := os.WriteFile(path, []byte(doc.Aggregate()), 0o644); err != nil {
		return fmt.Errorf("writing text file %s: %w", path, err)
	}
	return nil
}

// PDF re-flows the document into a paragraph-styled PDF at path.
func PDF(doc types.Document, path string, cfg types.RenderConfig) error {
	if cfg.BodySize <= 0 || cfg.HeadingSize <= 0 {
		cfg = types.DefaultConfig().Render
	}

	story := buildStory(doc)

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	for i, f := range story {
		switch f.kind {
		case flowHeading:
			pdf.SetFont("Helvetica", "B", cfg.HeadingSize)
			pdf.MultiCell(0, cfg.HeadingSize+4, f.text, "", "L", false)
			pdf.Ln(12)
		case flowBody:
			pdf.SetFont("Helvetica", "", cfg.BodySize)
			pdf.MultiCell(0, cfg.BodySize+3, f.text, "", "L", false)
			pdf.Ln(6)
		case flowPageBreak:
			// A break after the final segment would only produce a
			// trailing blank page.
			if i < len(story)-1 {
				pdf.AddPage()
			}
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF file %s: %w", path, err)
	}
	return nil
}

// buildStory flattens the document into layout directives. Each PDF page
// becomes a "Page N" heading followed by its non-blank lines as body
// paragraphs and a trailing page break; image sources have no heading.
func buildStory(doc types.Document) []flowable {
	var story []flowable
	for _, p := range doc.Pages {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		if doc.Kind == types.SourcePDF {
			story = append(story, flowable{kind: flowHeading, text: cleanLine(fmt.Sprintf("Page %d", p.Number))})
		}
		for _, line := range strings.Split(p.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			story = append(story, flowable{kind: flowBody, text: cleanLine(line)})
		}
		story = append(story, flowable{kind: flowPageBreak})
	}
	return story
}
