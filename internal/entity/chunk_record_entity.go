package entity

import (
	"time"
)

// ChunkRecord is a document chunk plus its embedding vector, the unit handed
// to the index store. The JSON field names are the interoperability contract
// shared with the search index and must not be renamed.
type ChunkRecord struct {
	ChunkId   string    `json:"chunk_id"`
	Title     string    `json:"title"`
	Chunk     string    `json:"chunk"`
	ParentId  string    `json:"parent_id"`
	Vector    []float32 `json:"text_vector"`
	CreatedAt time.Time `json:"createdAt"`
}

// SearchHit is a single similarity-search result. Only the searchable fields
// come back; vectors never leave the store.
type SearchHit struct {
	ChunkId string
	Title   string
	Chunk   string
	Score   float64
}
