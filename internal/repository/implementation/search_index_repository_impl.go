package implementation

import (
	"context"
	"errors"

	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/mapper"
	"rag-demo-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SearchIndexRepositoryImpl is the pgvector-backed index store. One concrete
// type serves both the ChunkIndexer and SimilaritySearcher capabilities.
type SearchIndexRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkRecordMapper
}

func NewSearchIndexRepository(db *gorm.DB) *SearchIndexRepositoryImpl {
	return &SearchIndexRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkRecordMapper(),
	}
}

// BulkUpsert writes each record individually so one bad record cannot take
// the rest of the batch down with it. Chunk ids are stable per document and
// index, which makes re-indexing an unchanged corpus idempotent.
func (r *SearchIndexRepositoryImpl) BulkUpsert(ctx context.Context, records []*entity.ChunkRecord) ([]contract.UpsertOutcome, error) {
	outcomes := make([]contract.UpsertOutcome, 0, len(records))

	for _, record := range records {
		m := r.mapper.ToModel(record)
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "chunk_id"}},
				UpdateAll: true,
			}).
			Create(m).Error

		outcome := contract.UpsertOutcome{
			ChunkId:   record.ChunkId,
			Succeeded: err == nil,
		}
		if err != nil {
			outcome.ErrorMessage = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// SearchSimilar returns the topK nearest chunks by cosine similarity.
// pgvector's <=> operator yields cosine distance, so the score is computed
// as 1 - distance (1.0 = identical). Vectors are intentionally not selected.
func (r *SearchIndexRepositoryImpl) SearchSimilar(ctx context.Context, vector []float32, topK int) ([]*entity.SearchHit, error) {
	if len(vector) == 0 {
		return nil, errors.New("similarity search requires a non-empty query vector")
	}
	if topK <= 0 {
		topK = 5
	}

	type result struct {
		ChunkId string
		Title   string
		Chunk   string
		Score   float64
	}
	var results []result

	queryVector := pgvector.NewVector(vector)

	err := r.db.WithContext(ctx).
		Table("chunk_records").
		Select("chunk_id, title, chunk, 1 - (text_vector <=> ?) AS score", queryVector).
		Order("score DESC").
		Limit(topK).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	hits := make([]*entity.SearchHit, len(results))
	for i, res := range results {
		hits[i] = &entity.SearchHit{
			ChunkId: res.ChunkId,
			Title:   res.Title,
			Chunk:   res.Chunk,
			Score:   res.Score,
		}
	}
	return hits, nil
}

// compile-time capability checks
var (
	_ contract.ChunkIndexer       = (*SearchIndexRepositoryImpl)(nil)
	_ contract.SimilaritySearcher = (*SearchIndexRepositoryImpl)(nil)
)
