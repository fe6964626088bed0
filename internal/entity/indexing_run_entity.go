package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RunStatusCompleted    = "completed"
	RunStatusWithFailures = "completed_with_failures"
	RunStatusEmpty        = "empty"
)

// ChunkFailure records one chunk (or document) that could not be indexed.
type ChunkFailure struct {
	ChunkId string `json:"chunk_id"`
	Error   string `json:"error"`
}

// IndexingRun is the persisted audit record of one indexing invocation.
type IndexingRun struct {
	Id              uuid.UUID
	Trigger         string
	Status          string
	TotalFilesFound int
	FilesProcessed  int
	ChunksProcessed int
	ChunksFailed    int
	Failures        []ChunkFailure
	StartedAt       time.Time
	FinishedAt      time.Time
}
