package tbfsbs

import (
	"bufio"
	"fmt"
	"io"
)

// WrapSequence splits s into consecutive chunks of exactly width characters;
// the final chunk may be shorter. A width of 0 or less means no wrapping.
// Chunking is by rune so multi-byte characters are never split.
func WrapSequence(s string, width int) []string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return []string{s}
	}
	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for off := 0; off < len(runes); off += width {
		end := off + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[off:end]))
	}
	return chunks
}

// Write serializes records to w in TBFSBS form: a "% identifier target
// description" header line, then the sequence wrapped to at most wrap
// characters per line (a single line when wrap is 0). The output parses
// back to the same records.
func Write(w io.Writer, records []Record, wrap int) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		header := fmt.Sprintf("%% %s %s", rec.Identifier, rec.Target)
		if rec.Description != "" {
			header += " " + rec.Description
		}
		if _, err := fmt.Fprintln(bw, header); err != nil {
			return fmt.Errorf("write record %s: %w", rec.Identifier, err)
		}
		for _, chunk := range WrapSequence(rec.Sequence, wrap) {
			if _, err := fmt.Fprintln(bw, chunk); err != nil {
				return fmt.Errorf("write record %s: %w", rec.Identifier, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
