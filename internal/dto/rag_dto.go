package dto

import (
	"time"

	"github.com/google/uuid"
)

// QueryRequest is the body of POST /api/rag/v1/query.
type QueryRequest struct {
	Text string `json:"text" validate:"required"`
	TopK int    `json:"top_k" validate:"omitempty,min=1,max=50"`
}

// SearchResultItem field names (including "@search.score") are the wire
// contract of the query response and must be preserved byte-for-byte.
type SearchResultItem struct {
	ChunkId                  string  `json:"chunk_id"`
	Title                    string  `json:"title"`
	Chunk                    string  `json:"chunk"`
	Score                    float64 `json:"@search.score"`
	ContainsSensitiveContent bool    `json:"containsSensitiveContent"`
}

type QueryRagResponse struct {
	Query                 string             `json:"query"`
	FoundSensitiveContent bool               `json:"foundSensitiveContent"`
	Results               []SearchResultItem `json:"results"`
	ResultCount           int                `json:"resultCount"`
}

// ChunkFailure itemizes one unit (chunk or document) that could not be
// indexed. It never escalates a run to a hard failure.
type ChunkFailure struct {
	ChunkId string `json:"chunk_id"`
	Error   string `json:"error"`
}

type IndexedChunkSummary struct {
	ChunkId       string `json:"chunk_id"`
	Title         string `json:"title"`
	ParentId      string `json:"parent_id"`
	ContentLength int    `json:"contentLength"`
}

type IndexCorpusResponse struct {
	Message         string                `json:"message"`
	ChunksProcessed int                   `json:"chunksProcessed"`
	ChunksFailed    int                   `json:"chunksFailed"`
	TotalFilesFound int                   `json:"totalFilesFound"`
	FilesProcessed  int                   `json:"filesProcessed"`
	Failures        []ChunkFailure        `json:"failures,omitempty"`
	Documents       []IndexedChunkSummary `json:"documents,omitempty"`
	RunId           string                `json:"run_id,omitempty"`
}

// IndexCorpusMessage is the async trigger payload published on the index topic.
type IndexCorpusMessage struct {
	RequestId   string    `json:"request_id"`
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

type AsyncIndexResponse struct {
	RequestId string `json:"request_id"`
	Status    string `json:"status"`
}

type IndexingRunResponse struct {
	Id              uuid.UUID      `json:"id"`
	Trigger         string         `json:"trigger"`
	Status          string         `json:"status"`
	TotalFilesFound int            `json:"total_files_found"`
	FilesProcessed  int            `json:"files_processed"`
	ChunksProcessed int            `json:"chunks_processed"`
	ChunksFailed    int            `json:"chunks_failed"`
	Failures        []ChunkFailure `json:"failures,omitempty"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      time.Time      `json:"finished_at"`
}
