// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// nonASCII matches every run of bytes outside the 7-bit range.
var nonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)

// cleanLine prepares one line of OCR text for PDF layout: markup-sensitive
// characters become entities (ampersand first, so later replacements are
// not double-escaped) and non-ASCII runs are removed. The text output path
// never goes through here; only the reconstructed PDF is ASCII-only.
func cleanLine(line string) string {
	line = strings.ReplaceAll(line, "&", "&amp;")
	line = strings.ReplaceAll(line, "<", "&lt;")
	line = strings.ReplaceAll(line, ">", "&gt;")
	return nonASCII.ReplaceAllString(line, "")
}
