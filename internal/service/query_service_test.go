package service

import (
	"context"
	"errors"
	"testing"

	"rag-demo-be/internal/dto"
	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/pkg/serverutils"
	"rag-demo-be/pkg/embedding"
	"rag-demo-be/pkg/sensitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	hits     []*entity.SearchHit
	err      error
	calls    int
	lastTopK int
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, vector []float32, topK int) ([]*entity.SearchHit, error) {
	f.calls++
	f.lastTopK = topK
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func TestQueryBlankTextRejectedBeforeEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			t.Fatal("embedder must not be called for blank input")
			return nil, nil
		},
	}
	searcher := &fakeSearcher{}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	_, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "   "})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, 0, searcher.calls)
}

func TestQueryEmbeddingFailureIsUpstreamError(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return nil, errors.New("quota exceeded")
		},
	}
	searcher := &fakeSearcher{}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	_, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "what is the vacation policy"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
	assert.Equal(t, 0, searcher.calls)
}

func TestQueryEmptyVectorIsUpstreamError(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return embeddingOf(), nil
		},
	}
	searcher := &fakeSearcher{}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	_, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "anything"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
	assert.Equal(t, 0, searcher.calls)
}

func TestQueryFlagsSensitiveResults(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return embeddingOf(0.1, 0.2, 0.3), nil
		},
	}
	searcher := &fakeSearcher{hits: []*entity.SearchHit{
		{ChunkId: "handbook_chunk_0", Title: "Handbook", Chunk: "Vacation policy details.", Score: 0.91},
		{ChunkId: "infra_chunk_3", Title: "Infra", Chunk: "The admin password is stored here.", Score: 0.84},
		{ChunkId: "faq_chunk_1", Title: "Faq", Chunk: "Office hours are 9 to 5.", Score: 0.77},
	}}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	res, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "  vacation policy  "})
	require.NoError(t, err)

	// the raw request text is echoed back untrimmed
	assert.Equal(t, "  vacation policy  ", res.Query)
	assert.Equal(t, 3, res.ResultCount)
	assert.True(t, res.FoundSensitiveContent)

	require.Len(t, res.Results, 3)
	// store ranking preserved
	assert.Equal(t, "handbook_chunk_0", res.Results[0].ChunkId)
	assert.Equal(t, 0.91, res.Results[0].Score)
	assert.False(t, res.Results[0].ContainsSensitiveContent)

	assert.True(t, res.Results[1].ContainsSensitiveContent)
	assert.False(t, res.Results[2].ContainsSensitiveContent)
}

func TestQueryCleanResults(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return embeddingOf(0.1), nil
		},
	}
	searcher := &fakeSearcher{hits: []*entity.SearchHit{
		{ChunkId: "faq_chunk_0", Title: "Faq", Chunk: "Parking is free.", Score: 0.66},
	}}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	res, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "parking"})
	require.NoError(t, err)

	assert.False(t, res.FoundSensitiveContent)
	assert.Equal(t, 1, res.ResultCount)
	assert.False(t, res.Results[0].ContainsSensitiveContent)
}

func TestQueryTopKDefaulting(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return embeddingOf(0.1), nil
		},
	}
	searcher := &fakeSearcher{}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 7)

	_, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "query one"})
	require.NoError(t, err)
	assert.Equal(t, 7, searcher.lastTopK)

	_, err = svc.Query(context.Background(), &dto.QueryRequest{Text: "query two", TopK: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, searcher.lastTopK)
}

func TestQueryEmbeddingCache(t *testing.T) {
	embedder := &fakeEmbedder{
		generate: func(call int, text, taskType string) (*embedding.EmbeddingResponse, error) {
			return embeddingOf(0.4, 0.5), nil
		},
	}
	searcher := &fakeSearcher{}

	svc := NewQueryService(embedder, searcher, sensitive.NewDefaultDetector(), noopLogger{}, 5)

	_, err := svc.Query(context.Background(), &dto.QueryRequest{Text: "same question"})
	require.NoError(t, err)
	_, err = svc.Query(context.Background(), &dto.QueryRequest{Text: "same question"})
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.calls)
	assert.Equal(t, 2, searcher.calls)
}
