package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IndexingRun struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Trigger         string    `gorm:"size:32"`
	Status          string    `gorm:"size:32;index"`
	TotalFilesFound int
	FilesProcessed  int
	ChunksProcessed int
	ChunksFailed    int
	Failures        datatypes.JSON `gorm:"type:jsonb"` // itemized {chunk_id, error} pairs
	StartedAt       time.Time      `gorm:"index"`
	FinishedAt      time.Time
}

func (IndexingRun) TableName() string {
	return "indexing_runs"
}
