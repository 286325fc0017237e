// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

var delim = strings.Repeat("=", 50)

func TestAggregate_PDFPages(t *testing.T) {
	doc := Document{
		SourcePath: "scan.pdf",
		Kind:       SourcePDF,
		Pages: []Page{
			{Number: 1, Text: "Hello"},
			{Number: 3, Text: "World"},
		},
	}

	want := "\n" + delim + "\nPage 1\n" + delim + "\nHello\n" +
		"\n" + delim + "\nPage 3\n" + delim + "\nWorld\n"
	if got := doc.Aggregate(); got != want {
		t.Errorf("Aggregate() = %q, want %q", got, want)
	}
}

func TestAggregate_SinglePageHasOneDelimiterBlock(t *testing.T) {
	doc := Document{
		Kind:  SourcePDF,
		Pages: []Page{{Number: 1, Text: "Hello"}},
	}

	got := doc.Aggregate()
	if n := strings.Count(got, delim); n != 2 {
		t.Errorf("expected one delimiter block (2 rulers), got %d rulers in %q", n, got)
	}
	if !strings.Contains(got, "Page 1") {
		t.Errorf("aggregate %q missing page heading", got)
	}
}

func TestAggregate_ImageSource(t *testing.T) {
	doc := Document{
		SourcePath: "photo.png",
		Kind:       SourceImage,
		Pages:      []Page{{Number: 0, Text: "just the text\n"}},
	}

	if got := doc.Aggregate(); got != "just the text\n" {
		t.Errorf("Aggregate() = %q, want text verbatim without delimiters", got)
	}
}

func TestAggregate_NoPages(t *testing.T) {
	for _, kind := range []SourceKind{SourceImage, SourcePDF} {
		doc := Document{Kind: kind}
		if got := doc.Aggregate(); got != "" {
			t.Errorf("Aggregate() for empty %s document = %q, want empty", kind, got)
		}
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name  string
		pages []Page
		want  bool
	}{
		{"no pages", nil, true},
		{"whitespace only", []Page{{Number: 1, Text: " \n\t "}}, true},
		{"real text", []Page{{Number: 1, Text: "Hello"}}, false},
		{"mixed", []Page{{Number: 1, Text: "  "}, {Number: 2, Text: "x"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Kind: SourcePDF, Pages: tt.pages}
			if got := doc.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
