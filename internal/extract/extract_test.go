// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/ocr-engine/pkg/types"
)

// fakeRecognizer implements Recognizer for testing. It returns canned page
// texts in call order, or an error.
type fakeRecognizer struct {
	texts []string
	err   error
	calls int
}

func (f *fakeRecognizer) Recognize(ctx context.Context, img []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	i := f.calls
	f.calls++
	if i < len(f.texts) {
		return f.texts[i], nil
	}
	return "", nil
}

// fakeRasterizer implements Rasterizer, returning n one-pixel bitmaps.
type fakeRasterizer struct {
	n   int
	err error
}

func (f *fakeRasterizer) Pages(ctx context.Context, pdfPath string) ([]image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	pages := make([]image.Image, f.n)
	for i := range pages {
		pages[i] = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return pages, nil
}

// fakeCounter implements PageCounter.
type fakeCounter struct {
	n   int
	err error
}

func (f *fakeCounter) Count(pdfPath string) (int, error) {
	return f.n, f.err
}

func TestImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(path, []byte("fake png"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Image(context.Background(), &fakeRecognizer{texts: []string{"recognized text"}}, path)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	if doc.Kind != types.SourceImage {
		t.Errorf("Kind = %q, want %q", doc.Kind, types.SourceImage)
	}
	if len(doc.Pages) != 1 || doc.Pages[0].Number != 0 || doc.Pages[0].Text != "recognized text" {
		t.Errorf("Pages = %+v, want one page 0 with recognized text", doc.Pages)
	}
}

func TestImage_MissingFile(t *testing.T) {
	_, err := Image(context.Background(), &fakeRecognizer{}, filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImage_RecognizerFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.jpg")
	if err := os.WriteFile(path, []byte("fake jpg"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Image(context.Background(), &fakeRecognizer{err: errors.New("engine exploded")}, path)
	if err == nil || !strings.Contains(err.Error(), "engine exploded") {
		t.Fatalf("err = %v, want wrapped engine failure", err)
	}
}

func TestPDF_SkipsEmptyPages(t *testing.T) {
	rec := &fakeRecognizer{texts: []string{"Hello", ""}}
	var log bytes.Buffer

	doc, err := PDF(context.Background(), rec, &fakeRasterizer{n: 2}, &fakeCounter{n: 2}, "two.pdf", &log)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}

	if len(doc.Pages) != 1 {
		t.Fatalf("Pages = %+v, want exactly one stored page", doc.Pages)
	}
	if doc.Pages[0].Number != 1 || doc.Pages[0].Text != "Hello" {
		t.Errorf("page = %+v, want page 1 %q", doc.Pages[0], "Hello")
	}

	agg := doc.Aggregate()
	if n := strings.Count(agg, strings.Repeat("=", 50)); n != 2 {
		t.Errorf("aggregate has %d rulers, want 2 (one delimiter block): %q", n, agg)
	}
	if !strings.Contains(log.String(), "Warning: No text extracted from page 2") {
		t.Errorf("log %q missing empty-page warning", log.String())
	}
}

func TestPDF_ProgressOutput(t *testing.T) {
	rec := &fakeRecognizer{texts: []string{"a", "b", "c"}}
	var log bytes.Buffer

	doc, err := PDF(context.Background(), rec, &fakeRasterizer{n: 3}, &fakeCounter{n: 3}, "three.pdf", &log)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}

	if len(doc.Pages) != 3 {
		t.Fatalf("stored %d pages, want 3", len(doc.Pages))
	}
	for i, p := range doc.Pages {
		if p.Number != i+1 {
			t.Errorf("page %d has Number %d, want %d (order preserved)", i, p.Number, i+1)
		}
	}
	for _, want := range []string{"Total pages in PDF: 3", "Processing page 1 of 3", "Processing page 3 of 3"} {
		if !strings.Contains(log.String(), want) {
			t.Errorf("log %q missing %q", log.String(), want)
		}
	}
}

func TestPDF_AllPagesEmpty(t *testing.T) {
	rec := &fakeRecognizer{texts: []string{" ", "\n"}}
	var log bytes.Buffer

	doc, err := PDF(context.Background(), rec, &fakeRasterizer{n: 2}, &fakeCounter{n: 2}, "blank.pdf", &log)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !doc.Empty() {
		t.Errorf("document should be empty, got %+v", doc.Pages)
	}
	if !strings.Contains(log.String(), "No text could be extracted from any page") {
		t.Errorf("log %q missing whole-document warning", log.String())
	}
}

func TestPDF_BackendFailures(t *testing.T) {
	tests := []struct {
		name    string
		rec     *fakeRecognizer
		ras     *fakeRasterizer
		counter *fakeCounter
		wantErr string
	}{
		{
			name:    "counter failure",
			rec:     &fakeRecognizer{},
			ras:     &fakeRasterizer{n: 1},
			counter: &fakeCounter{err: errors.New("not a PDF")},
			wantErr: "page count",
		},
		{
			name:    "rasterizer failure",
			rec:     &fakeRecognizer{},
			ras:     &fakeRasterizer{err: errors.New("mupdf crashed")},
			counter: &fakeCounter{n: 1},
			wantErr: "rasterizing",
		},
		{
			name:    "recognizer failure aborts document",
			rec:     &fakeRecognizer{err: errors.New("engine exploded")},
			ras:     &fakeRasterizer{n: 2},
			counter: &fakeCounter{n: 2},
			wantErr: "recognizing page 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			_, err := PDF(context.Background(), tt.rec, tt.ras, tt.counter, "bad.pdf", &log)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPDF_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var log bytes.Buffer
	_, err := PDF(ctx, &fakeRecognizer{texts: []string{"x"}}, &fakeRasterizer{n: 1}, &fakeCounter{n: 1}, "c.pdf", &log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
