package utils

import (
	"strings"
	"unicode"
)

// SplitText splits a long string into chunks of at most 'maxChunkSize' runes.
// Consecutive chunks share 'overlapSize' runes to preserve context at boundaries.
// Instead of slicing blindly, each cut is placed at the best natural boundary
// (sentence end, blank line, newline, whitespace) found between the midpoint of
// the current window and the size limit; only when none exists does it cut mid-word.
//
// Precondition: overlapSize < maxChunkSize, otherwise the cursor is not
// guaranteed to advance. Callers own that choice; it is not checked here.
func SplitText(text string, maxChunkSize int, overlapSize int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)

	if totalLen <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < totalLen {
		end := start + maxChunkSize

		// Last chunk: take everything remaining
		if end >= totalLen {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		breakPoint := findBestBreakPoint(runes, start, end)
		chunks = append(chunks, string(runes[start:breakPoint]))

		// Move the cursor back by the overlap
		start = breakPoint - overlapSize
		if start < 0 {
			start = 0
		}
	}

	return chunks
}

// findBestBreakPoint scans backward from maxEnd looking for a natural boundary.
// The scan never goes past the midpoint of the [start, maxEnd) window: a cut
// near the limit is preferred over an earlier, better-looking one.
func findBestBreakPoint(runes []rune, start int, maxEnd int) int {
	mid := start + (maxEnd-start)/2

	// Sentence endings first
	for i := maxEnd - 1; i > mid; i-- {
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			return i + 1
		}
	}

	// Paragraph breaks (blank line)
	for i := maxEnd - 1; i > mid; i-- {
		if runes[i] == '\n' && i > 0 && runes[i-1] == '\n' {
			return i + 1
		}
	}

	// Line breaks
	for i := maxEnd - 1; i > mid; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}

	// Word boundaries
	for i := maxEnd - 1; i > mid; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}

	// No good break point found, cut at max length
	return maxEnd
}
