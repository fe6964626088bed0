package utils

import (
	"fmt"
	"strings"
)

// ChunkID builds the deterministic identifier for a chunk within its parent
// document. Re-chunking an unchanged document reproduces the same ids, which
// makes re-indexing an upsert instead of a duplicate insert.
func ChunkID(parentID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", parentID, index)
}

// FormatTitle converts a document identifier (usually a file name) into a
// readable display title: separators become spaces, each word is capitalized.
// "quarterly-sales_report" -> "Quarterly Sales Report"
func FormatTitle(identifier string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(identifier)

	words := strings.Fields(cleaned)
	for i, word := range words {
		r := []rune(word)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}

	return strings.Join(words, " ")
}
