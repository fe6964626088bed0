package corpus

// Document is a raw text document handed to the indexing pipeline.
// The identifier is the stable source name (file base name without extension)
// that chunk ids and display titles are derived from.
type Document struct {
	ID   string
	Text string
}

// Source enumerates the text corpus to index. Any enumerable source works;
// the reference deployment scans a directory of .txt files.
type Source interface {
	ListDocuments() ([]Document, error)
}
