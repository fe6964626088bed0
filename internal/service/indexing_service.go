package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rag-demo-be/internal/dto"
	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/pkg/logger"
	"rag-demo-be/internal/pkg/serverutils"
	"rag-demo-be/internal/repository/contract"
	"rag-demo-be/pkg/corpus"
	"rag-demo-be/pkg/embedding"
	"rag-demo-be/pkg/events"
	"rag-demo-be/pkg/utils"

	"github.com/google/uuid"
)

// EventPublisher is the outbound event bus. It is optional: a nil publisher
// disables completion events without touching the indexing flow.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IIndexingService interface {
	// IndexCorpus chunks, embeds and indexes every document of the corpus.
	// Failures of single chunks or documents are collected, not raised; the
	// returned summary is the only place they surface.
	IndexCorpus(ctx context.Context, trigger string) (*dto.IndexCorpusResponse, error)

	// ListRuns returns the most recent indexing runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*dto.IndexingRunResponse, error)
}

type indexingService struct {
	source            corpus.Source
	embeddingProvider embedding.EmbeddingProvider
	indexer           contract.ChunkIndexer
	runRepository     contract.IndexingRunRepository
	eventPublisher    EventPublisher
	logger            logger.ILogger
	maxChunkSize      int
	overlapSize       int
}

func NewIndexingService(
	source corpus.Source,
	embeddingProvider embedding.EmbeddingProvider,
	indexer contract.ChunkIndexer,
	runRepository contract.IndexingRunRepository,
	eventPublisher EventPublisher,
	sysLogger logger.ILogger,
	maxChunkSize int,
	overlapSize int,
) IIndexingService {
	return &indexingService{
		source:            source,
		embeddingProvider: embeddingProvider,
		indexer:           indexer,
		runRepository:     runRepository,
		eventPublisher:    eventPublisher,
		logger:            sysLogger,
		maxChunkSize:      maxChunkSize,
		overlapSize:       overlapSize,
	}
}

func (s *indexingService) IndexCorpus(ctx context.Context, trigger string) (*dto.IndexCorpusResponse, error) {
	startedAt := time.Now()
	runId := uuid.New()

	s.logger.Info("indexing", "Starting document indexing process", map[string]interface{}{
		"run_id":  runId.String(),
		"trigger": trigger,
	})

	documents, err := s.source.ListDocuments()
	if err != nil {
		return nil, serverutils.NewInternalError(fmt.Sprintf("failed to list corpus documents: %v", err))
	}

	totalFilesFound := len(documents)
	if totalFilesFound == 0 {
		s.logger.Warn("indexing", "No documents found to index", nil)
		res := &dto.IndexCorpusResponse{
			Message: "No documents found to index",
			RunId:   runId.String(),
		}
		s.finishRun(ctx, runId, trigger, entity.RunStatusEmpty, res, startedAt)
		return res, nil
	}

	var (
		records        []*entity.ChunkRecord
		failures       []dto.ChunkFailure
		summaries      []dto.IndexedChunkSummary
		filesProcessed int
	)

	for _, doc := range documents {
		produced, docFailures := s.processDocument(doc, &records, &summaries)
		failures = append(failures, docFailures...)
		if produced {
			filesProcessed++
		}
	}

	// "nothing to index" is a valid terminal state, not an error
	if len(records) == 0 {
		s.logger.Warn("indexing", "No documents were successfully processed", map[string]interface{}{
			"total_files_found": totalFilesFound,
			"failures":          len(failures),
		})
		res := &dto.IndexCorpusResponse{
			Message:         "No documents were successfully processed",
			TotalFilesFound: totalFilesFound,
			ChunksFailed:    len(failures),
			Failures:        failures,
			RunId:           runId.String(),
		}
		s.finishRun(ctx, runId, trigger, entity.RunStatusEmpty, res, startedAt)
		return res, nil
	}

	outcomes, err := s.indexer.BulkUpsert(ctx, records)
	if err != nil {
		return nil, serverutils.NewInternalError(fmt.Sprintf("bulk upsert failed: %v", err))
	}

	succeeded := 0
	for _, outcome := range outcomes {
		if outcome.Succeeded {
			succeeded++
			continue
		}
		failures = append(failures, dto.ChunkFailure{
			ChunkId: outcome.ChunkId,
			Error:   outcome.ErrorMessage,
		})
	}

	status := entity.RunStatusCompleted
	if len(failures) > 0 {
		status = entity.RunStatusWithFailures
	}

	res := &dto.IndexCorpusResponse{
		Message:         "Document chunks indexed successfully",
		ChunksProcessed: succeeded,
		ChunksFailed:    len(failures),
		TotalFilesFound: totalFilesFound,
		FilesProcessed:  filesProcessed,
		Failures:        failures,
		Documents:       summaries,
		RunId:           runId.String(),
	}

	s.logger.Info("indexing", "Indexing completed", map[string]interface{}{
		"run_id":           runId.String(),
		"chunks_processed": succeeded,
		"chunks_failed":    len(failures),
		"files_processed":  filesProcessed,
	})

	s.finishRun(ctx, runId, trigger, status, res, startedAt)
	return res, nil
}

// processDocument chunks and embeds one document, appending successful
// records and summaries in place. One failing chunk never aborts the rest of
// the document, and a document producing nothing never aborts the corpus.
func (s *indexingService) processDocument(
	doc corpus.Document,
	records *[]*entity.ChunkRecord,
	summaries *[]dto.IndexedChunkSummary,
) (bool, []dto.ChunkFailure) {
	if strings.TrimSpace(doc.Text) == "" {
		s.logger.Warn("indexing", "Document is empty, skipping", map[string]interface{}{
			"parent_id": doc.ID,
		})
		return false, nil
	}

	chunks := utils.SplitText(doc.Text, s.maxChunkSize, s.overlapSize)
	s.logger.Info("indexing", "Document split into chunks", map[string]interface{}{
		"parent_id": doc.ID,
		"chunks":    len(chunks),
	})

	title := utils.FormatTitle(doc.ID)

	var failures []dto.ChunkFailure
	produced := 0

	for i, chunk := range chunks {
		chunkId := utils.ChunkID(doc.ID, i)

		res, err := s.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			s.logger.Error("indexing", "Failed to generate embedding for chunk", map[string]interface{}{
				"chunk_id": chunkId,
				"error":    err.Error(),
			})
			failures = append(failures, dto.ChunkFailure{ChunkId: chunkId, Error: err.Error()})
			continue
		}
		if res == nil || len(res.Embedding.Values) == 0 {
			// a record without a vector must never reach the index
			failures = append(failures, dto.ChunkFailure{
				ChunkId: chunkId,
				Error:   "embedding provider returned an empty vector",
			})
			continue
		}

		*records = append(*records, &entity.ChunkRecord{
			ChunkId:   chunkId,
			Title:     title,
			Chunk:     chunk,
			ParentId:  doc.ID,
			Vector:    res.Embedding.Values,
			CreatedAt: time.Now().UTC(),
		})
		*summaries = append(*summaries, dto.IndexedChunkSummary{
			ChunkId:       chunkId,
			Title:         title,
			ParentId:      doc.ID,
			ContentLength: len(chunk),
		})
		produced++
	}

	return produced > 0, failures
}

// finishRun persists the audit record and emits the completion event.
// Neither step may fail the run itself.
func (s *indexingService) finishRun(
	ctx context.Context,
	runId uuid.UUID,
	trigger string,
	status string,
	res *dto.IndexCorpusResponse,
	startedAt time.Time,
) {
	runFailures := make([]entity.ChunkFailure, len(res.Failures))
	for i, f := range res.Failures {
		runFailures[i] = entity.ChunkFailure{ChunkId: f.ChunkId, Error: f.Error}
	}

	run := &entity.IndexingRun{
		Id:              runId,
		Trigger:         trigger,
		Status:          status,
		TotalFilesFound: res.TotalFilesFound,
		FilesProcessed:  res.FilesProcessed,
		ChunksProcessed: res.ChunksProcessed,
		ChunksFailed:    res.ChunksFailed,
		Failures:        runFailures,
		StartedAt:       startedAt,
		FinishedAt:      time.Now(),
	}

	if err := s.runRepository.Create(ctx, run); err != nil {
		s.logger.Error("indexing", "Failed to persist indexing run", map[string]interface{}{
			"run_id": runId.String(),
			"error":  err.Error(),
		})
	}

	if s.eventPublisher == nil {
		return
	}

	eventCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := events.NewIndexRunCompleted(runId.String(), trigger, res.ChunksProcessed, res.ChunksFailed, res.FilesProcessed)
	if err := s.eventPublisher.Publish(eventCtx, event); err != nil {
		s.logger.Warn("indexing", "Failed to publish run-completed event", map[string]interface{}{
			"run_id": runId.String(),
			"error":  err.Error(),
		})
	}
}

func (s *indexingService) ListRuns(ctx context.Context, limit int) ([]*dto.IndexingRunResponse, error) {
	runs, err := s.runRepository.FindRecent(ctx, limit)
	if err != nil {
		return nil, serverutils.NewInternalError(fmt.Sprintf("failed to list indexing runs: %v", err))
	}

	response := make([]*dto.IndexingRunResponse, len(runs))
	for i, run := range runs {
		failures := make([]dto.ChunkFailure, len(run.Failures))
		for j, f := range run.Failures {
			failures[j] = dto.ChunkFailure{ChunkId: f.ChunkId, Error: f.Error}
		}
		response[i] = &dto.IndexingRunResponse{
			Id:              run.Id,
			Trigger:         run.Trigger,
			Status:          run.Status,
			TotalFilesFound: run.TotalFilesFound,
			FilesProcessed:  run.FilesProcessed,
			ChunksProcessed: run.ChunksProcessed,
			ChunksFailed:    run.ChunksFailed,
			Failures:        failures,
			StartedAt:       run.StartedAt,
			FinishedAt:      run.FinishedAt,
		}
	}
	return response, nil
}
