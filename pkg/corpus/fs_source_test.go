package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFsSourceListDocuments(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"employee_handbook.txt": "Welcome to the company.",
		"q3-sales.txt":          "Sales were up.",
		"notes.md":              "should be ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	source := NewFsSource(dir)
	docs, err := source.ListDocuments()
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("document count = %d, want 2", len(docs))
	}

	byID := make(map[string]string, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc.Text
	}

	if byID["employee_handbook"] != "Welcome to the company." {
		t.Errorf("employee_handbook text = %q", byID["employee_handbook"])
	}
	if byID["q3-sales"] != "Sales were up." {
		t.Errorf("q3-sales text = %q", byID["q3-sales"])
	}
	if _, ok := byID["notes"]; ok {
		t.Error("non-txt file should not be listed")
	}
}

func TestFsSourceMissingDirectory(t *testing.T) {
	source := NewFsSource(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, err := source.ListDocuments(); err == nil {
		t.Fatal("expected error for missing corpus directory")
	}
}

func TestFsSourceEmptyDirectory(t *testing.T) {
	source := NewFsSource(t.TempDir())

	docs, err := source.ListDocuments()
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("document count = %d, want 0", len(docs))
	}
}
