package service

import (
	"context"
	"encoding/json"
	"time"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/pkg/events"
	pktNats "studentdrive-be/pkg/nats"

	"github.com/google/uuid"
)

type IContentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error)
	List(ctx context.Context, userId uuid.UUID, req *dto.ListContentsRequest) (*dto.ListContentsResponse, error)
}

type contentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IContentService {
	return &contentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func contentToResponse(c *entity.Content) dto.ContentResponse {
	return dto.ContentResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		Subject:     c.Subject,
		FileUrl:     c.FileUrl,
		UploaderId:  c.UploaderId,
		CreatedAt:   c.CreatedAt,
	}
}

func (s *contentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content := &entity.Content{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.ContentType(req.Type),
		Subject:     req.Subject,
		FileUrl:     req.FileUrl,
		UploaderId:  userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.ContentRepository().Create(ctx, content); err != nil {
		return nil, err
	}

	// Kick off the embedding pipeline for semantic search.
	msgPayload := dto.PublishEmbedContentMessage{ContentId: content.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(events.TypeContentUploaded, map[string]interface{}{
			"content_id":  content.Id.String(),
			"uploader_id": userId.String(),
			"title":       content.Title,
		})
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	res := contentToResponse(content)
	return &res, nil
}

func (s *contentService) Show(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Content not found")
	}

	res := contentToResponse(content)
	return &res, nil
}

func (s *contentService) List(ctx context.Context, userId uuid.UUID, req *dto.ListContentsRequest) (*dto.ListContentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	uploadedBy := specification.UploadedBy{UploaderID: userId}

	total, err := uow.ContentRepository().Count(ctx, uploadedBy)
	if err != nil {
		return nil, err
	}

	contents, err := uow.ContentRepository().FindAll(ctx,
		uploadedBy,
		specification.OrderByNewest{},
		specification.Paginate{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContentResponse, len(contents))
	for i, c := range contents {
		items[i] = contentToResponse(c)
	}

	return &dto.ListContentsResponse{
		Contents: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}
