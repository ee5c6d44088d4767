package service

import (
	"context"

	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/pkg/embedding"

	"github.com/google/uuid"
)

const defaultSearchLimit = 20

type ISearchService interface {
	SearchContents(ctx context.Context, userId uuid.UUID, req *dto.SearchContentsRequest) (*dto.SearchContentsResponse, error)
}

type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
}

// NewSearchService builds the content search. embeddingProvider may be nil,
// in which case search degrades to keyword matching only.
func NewSearchService(uowFactory unitofwork.RepositoryFactory, embeddingProvider embedding.Provider) ISearchService {
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (s *searchService) SearchContents(ctx context.Context, userId uuid.UUID, req *dto.SearchContentsRequest) (*dto.SearchContentsResponse, error) {
	limit := req.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Keyword pass: case-insensitive substring match on title/description.
	keywordHits, err := uow.ContentRepository().FindAll(ctx,
		specification.UploadedBy{UploaderID: userId},
		specification.TitleOrDescriptionMatches{Query: req.Query},
		specification.OrderByNewest{},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchContentResult, 0, limit)
	seen := make(map[uuid.UUID]bool, limit)
	for _, c := range keywordHits {
		seen[c.Id] = true
		results = append(results, dto.SearchContentResult{Content: contentToResponse(c)})
	}

	if s.embeddingProvider == nil {
		return &dto.SearchContentsResponse{Results: results, Semantic: false}, nil
	}

	// Semantic pass: embed the query and rank chunks by cosine distance.
	queryEmbedding, err := s.embeddingProvider.Generate(ctx, req.Query, embedding.TaskTypeQuery)
	if err != nil {
		// A broken embedding backend should not break keyword search.
		return &dto.SearchContentsResponse{Results: results, Semantic: false}, nil
	}

	matches, err := uow.ContentEmbeddingRepository().SearchNearest(ctx, queryEmbedding.Values, limit)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		if seen[match.ContentId] || len(results) >= limit {
			continue
		}
		content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: match.ContentId})
		if err != nil {
			return nil, err
		}
		if content == nil || content.UploaderId != userId {
			continue
		}
		seen[match.ContentId] = true
		results = append(results, semanticResult(content, match.Distance))
	}

	return &dto.SearchContentsResponse{Results: results, Semantic: true}, nil
}

func semanticResult(c *entity.Content, distance float64) dto.SearchContentResult {
	score := 1 - distance
	return dto.SearchContentResult{
		Content: contentToResponse(c),
		Score:   &score,
	}
}
