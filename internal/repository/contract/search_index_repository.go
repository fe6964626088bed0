package contract

import (
	"context"

	"rag-demo-be/internal/entity"
)

// UpsertOutcome is the per-record result of a bulk submission, correlated to
// its record by chunk id rather than by position.
type UpsertOutcome struct {
	ChunkId      string
	Succeeded    bool
	ErrorMessage string
}

// ChunkIndexer is the write side of the index store. BulkUpsert attempts
// every record and reports one outcome each; already-written records are not
// rolled back when later ones fail.
type ChunkIndexer interface {
	BulkUpsert(ctx context.Context, records []*entity.ChunkRecord) ([]UpsertOutcome, error)
}

// SimilaritySearcher is the read side of the index store. Results come back
// ranked by descending similarity score and never include vectors.
type SimilaritySearcher interface {
	SearchSimilar(ctx context.Context, vector []float32, topK int) ([]*entity.SearchHit, error)
}
