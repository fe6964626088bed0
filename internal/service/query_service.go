package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rag-demo-be/internal/dto"
	"rag-demo-be/internal/pkg/logger"
	"rag-demo-be/internal/pkg/serverutils"
	"rag-demo-be/internal/repository/contract"
	"rag-demo-be/pkg/embedding"
	"rag-demo-be/pkg/sensitive"

	"github.com/patrickmn/go-cache"
)

type IQueryService interface {
	// Query embeds the text, runs a similarity search and annotates each
	// result with the sensitive-content flag. Result order is the store's
	// relevance ranking, untouched.
	Query(ctx context.Context, req *dto.QueryRequest) (*dto.QueryRagResponse, error)
}

type queryService struct {
	embeddingProvider embedding.EmbeddingProvider
	searcher          contract.SimilaritySearcher
	detector          *sensitive.Detector
	embedCache        *cache.Cache
	logger            logger.ILogger
	defaultTopK       int
}

func NewQueryService(
	embeddingProvider embedding.EmbeddingProvider,
	searcher contract.SimilaritySearcher,
	detector *sensitive.Detector,
	sysLogger logger.ILogger,
	defaultTopK int,
) IQueryService {
	if defaultTopK <= 0 {
		defaultTopK = 5
	}
	return &queryService{
		embeddingProvider: embeddingProvider,
		searcher:          searcher,
		detector:          detector,
		// demo queries repeat a lot; skip the provider round-trip when they do
		embedCache:  cache.New(10*time.Minute, 15*time.Minute),
		logger:      sysLogger,
		defaultTopK: defaultTopK,
	}
}

func (s *queryService) Query(ctx context.Context, req *dto.QueryRequest) (*dto.QueryRagResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, serverutils.NewValidationError("Please provide a 'text' property in the request body")
	}

	vector, err := s.embedQuery(text)
	if err != nil {
		s.logger.Error("query", "Failed to generate query embedding", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewUpstreamError(fmt.Sprintf("embedding generation failed: %v", err))
	}

	topK := req.TopK
	if topK <= 0 {
		topK = s.defaultTopK
	}

	hits, err := s.searcher.SearchSimilar(ctx, vector, topK)
	if err != nil {
		s.logger.Error("query", "Similarity search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewInternalError(fmt.Sprintf("similarity search failed: %v", err))
	}

	response := &dto.QueryRagResponse{
		Query:   req.Text,
		Results: make([]dto.SearchResultItem, 0, len(hits)),
	}

	for _, hit := range hits {
		item := dto.SearchResultItem{
			ChunkId: hit.ChunkId,
			Title:   hit.Title,
			Chunk:   hit.Chunk,
			Score:   hit.Score,
		}
		if s.detector.ContainsSensitive(hit.Chunk) {
			item.ContainsSensitiveContent = true
			response.FoundSensitiveContent = true
		}
		response.Results = append(response.Results, item)
	}
	response.ResultCount = len(response.Results)

	s.logger.Info("query", "Query completed", map[string]interface{}{
		"result_count":            response.ResultCount,
		"found_sensitive_content": response.FoundSensitiveContent,
	})

	return response, nil
}

func (s *queryService) embedQuery(text string) ([]float32, error) {
	if cached, found := s.embedCache.Get(text); found {
		return cached.([]float32), nil
	}

	res, err := s.embeddingProvider.Generate(text, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("embedding provider returned no data")
	}

	s.embedCache.Set(text, res.Embedding.Values, cache.DefaultExpiration)
	return res.Embedding.Values, nil
}
