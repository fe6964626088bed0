package corpus

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FsSource reads *.txt documents from a directory on the local filesystem.
type FsSource struct {
	dataPath string
}

func NewFsSource(dataPath string) *FsSource {
	return &FsSource{dataPath: dataPath}
}

// ListDocuments scans the data directory for .txt files. A file that cannot
// be read is skipped with a warning; one bad file never hides the rest of
// the corpus.
func (s *FsSource) ListDocuments() ([]Document, error) {
	if _, err := os.Stat(s.dataPath); err != nil {
		return nil, fmt.Errorf("corpus directory %s not found: %w", s.dataPath, err)
	}

	matches, err := filepath.Glob(filepath.Join(s.dataPath, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus directory: %w", err)
	}

	documents := make([]Document, 0, len(matches))
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[WARN] Skipping unreadable corpus file %s: %v", path, err)
			continue
		}

		base := filepath.Base(path)
		documents = append(documents, Document{
			ID:   strings.TrimSuffix(base, filepath.Ext(base)),
			Text: string(content),
		})
	}

	return documents, nil
}
