// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ocr-engine/internal/validate"
)

// Interactive runs the blocking prompt loop: input path until valid, a
// numeric format menu until valid, output path until valid, then one
// pipeline run. Prompts and outcomes are printed to the pipeline's writer.
// It returns io.ErrUnexpectedEOF when the reader runs out before the run
// completes.
func (p *Pipeline) Interactive(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(p.Out, "\nOCR Command-Line Application")
	fmt.Fprintln(p.Out, "===========================")

	var input string
	for {
		fmt.Fprint(p.Out, "\nEnter the path to your input file (PDF or image): ")
		line, ok := readLine(scanner)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		if validate.InputFile(line, p.Out) {
			input = line
			break
		}
	}

	var ext string
	for ext == "" {
		fmt.Fprintln(p.Out, "\nSelect output format:")
		fmt.Fprintln(p.Out, "1. Text file (.txt)")
		fmt.Fprintln(p.Out, "2. PDF file (.pdf)")
		fmt.Fprint(p.Out, "Enter your choice (1 or 2): ")
		choice, ok := readLine(scanner)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		switch choice {
		case "1":
			ext = ".txt"
		case "2":
			ext = ".pdf"
		default:
			fmt.Fprintln(p.Out, "Invalid choice. Please try again.")
		}
	}

	var output string
	for {
		fmt.Fprintf(p.Out, "\nEnter the output file path (with %s extension): ", ext)
		line, ok := readLine(scanner)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		if validate.OutputFile(line, p.Out) {
			output = line
			break
		}
	}

	fmt.Fprintln(p.Out, "\nProcessing file...")
	if p.ProcessFile(ctx, input, output) {
		fmt.Fprintf(p.Out, "\nSuccess! Output saved to: %s\n", output)
	} else {
		fmt.Fprintln(p.Out, "\nFailed to process the file.")
	}
	return nil
}

// readLine scans one line and trims surrounding whitespace.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
