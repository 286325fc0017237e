// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks input and output paths against the formats the
// pipeline supports. Failures are reported as console diagnostics plus a
// boolean; nothing here has side effects beyond the message.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// imageExts lists the image extensions accepted as input.
var imageExts = []string{".jpg", ".jpeg", ".png"}

// pdfExts lists the PDF extensions accepted as input.
var pdfExts = []string{".pdf"}

// outputExts lists the extensions accepted for output files.
var outputExts = []string{".txt", ".pdf"}

// IsImage reports whether path has a supported image extension
// (case-insensitive).
func IsImage(path string) bool {
	return hasExt(path, imageExts)
}

// IsPDF reports whether path has a PDF extension (case-insensitive).
func IsPDF(path string) bool {
	return hasExt(path, pdfExts)
}

// InputFile reports whether path exists and carries a supported input
// extension. On failure it prints a diagnostic to w and returns false.
func InputFile(path string, w io.Writer) bool {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "Error: Input file '%s' does not exist.\n", path)
		return false
	}
	if !IsImage(path) && !IsPDF(path) {
		fmt.Fprintf(w, "Error: Unsupported input file format. Supported formats are: %s\n",
			strings.Join(append(append([]string{}, imageExts...), pdfExts...), ", "))
		return false
	}
	return true
}

// OutputFile reports whether path carries a supported output extension. On
// failure it prints a diagnostic to w and returns false.
func OutputFile(path string, w io.Writer) bool {
	if !hasExt(path, outputExts) {
		fmt.Fprintf(w, "Error: Unsupported output file format. Supported formats are: %s\n",
			strings.Join(outputExts, ", "))
		return false
	}
	return true
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
