package mapper

import (
	"encoding/json"

	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/model"
)

type IndexingRunMapper struct{}

func NewIndexingRunMapper() *IndexingRunMapper {
	return &IndexingRunMapper{}
}

func (m *IndexingRunMapper) ToEntity(r *model.IndexingRun) *entity.IndexingRun {
	if r == nil {
		return nil
	}

	var failures []entity.ChunkFailure
	if len(r.Failures) > 0 {
		// Corrupt details are dropped rather than failing the whole listing
		_ = json.Unmarshal(r.Failures, &failures)
	}

	return &entity.IndexingRun{
		Id:              r.Id,
		Trigger:         r.Trigger,
		Status:          r.Status,
		TotalFilesFound: r.TotalFilesFound,
		FilesProcessed:  r.FilesProcessed,
		ChunksProcessed: r.ChunksProcessed,
		ChunksFailed:    r.ChunksFailed,
		Failures:        failures,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
	}
}

func (m *IndexingRunMapper) ToModel(r *entity.IndexingRun) (*model.IndexingRun, error) {
	if r == nil {
		return nil, nil
	}

	var failures []byte
	if len(r.Failures) > 0 {
		data, err := json.Marshal(r.Failures)
		if err != nil {
			return nil, err
		}
		failures = data
	}

	return &model.IndexingRun{
		Id:              r.Id,
		Trigger:         r.Trigger,
		Status:          r.Status,
		TotalFilesFound: r.TotalFilesFound,
		FilesProcessed:  r.FilesProcessed,
		ChunksProcessed: r.ChunksProcessed,
		ChunksFailed:    r.ChunksFailed,
		Failures:        failures,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
	}, nil
}

func (m *IndexingRunMapper) ToEntities(runs []*model.IndexingRun) []*entity.IndexingRun {
	entities := make([]*entity.IndexingRun, len(runs))
	for i, r := range runs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
