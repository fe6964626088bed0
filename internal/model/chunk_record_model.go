package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type ChunkRecord struct {
	ChunkId    string          `gorm:"column:chunk_id;primaryKey"`
	Title      string          `gorm:"type:text"`
	Chunk      string          `gorm:"type:text"`
	ParentId   string          `gorm:"index"`
	TextVector pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 uses 768 dimensions
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ChunkRecord) TableName() string {
	return "chunk_records"
}
