package mapper

import (
	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkRecordMapper struct{}

func NewChunkRecordMapper() *ChunkRecordMapper {
	return &ChunkRecordMapper{}
}

func (m *ChunkRecordMapper) ToEntity(r *model.ChunkRecord) *entity.ChunkRecord {
	if r == nil {
		return nil
	}

	return &entity.ChunkRecord{
		ChunkId:   r.ChunkId,
		Title:     r.Title,
		Chunk:     r.Chunk,
		ParentId:  r.ParentId,
		Vector:    r.TextVector.Slice(),
		CreatedAt: r.CreatedAt,
	}
}

func (m *ChunkRecordMapper) ToModel(r *entity.ChunkRecord) *model.ChunkRecord {
	if r == nil {
		return nil
	}

	return &model.ChunkRecord{
		ChunkId:    r.ChunkId,
		Title:      r.Title,
		Chunk:      r.Chunk,
		ParentId:   r.ParentId,
		TextVector: pgvector.NewVector(r.Vector),
		CreatedAt:  r.CreatedAt,
	}
}
