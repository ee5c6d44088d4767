package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/pkg/logger"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/pkg/events"
	"studentdrive-be/pkg/generation"
	pktNats "studentdrive-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	defaultFlashcardCount = 10
	defaultQuestionCount  = 5

	maxFlashcardCount = 20
	maxQuestionCount  = 15
)

type IAiService interface {
	GenerateFlashcards(ctx context.Context, userId uuid.UUID, req *dto.GenerateFlashcardsRequest) (*dto.GenerateFlashcardsResponse, error)
	GenerateQuiz(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GenerateSummary(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error)
	GenerateMindMap(ctx context.Context, userId uuid.UUID, req *dto.GenerateMindMapRequest) (*dto.GenerateMindMapResponse, error)
}

type aiService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      generation.Generator
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	generator generation.Generator,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAiService {
	return &aiService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

// resolveContentText loads title/description for the given content ids and
// joins them into one text blob, in the order the ids were supplied. Missing
// ids are silently absent; an empty or fully-unmatched input yields "".
func (s *aiService) resolveContentText(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}

	contents, err := uow.ContentRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return "", err
	}

	byId := make(map[uuid.UUID]*entity.Content, len(contents))
	for _, c := range contents {
		byId[c.Id] = c
	}

	blocks := make([]string, 0, len(contents))
	for _, id := range ids {
		c, ok := byId[id]
		if !ok {
			continue
		}
		blocks = append(blocks, c.Title+"\n"+c.Description)
	}

	return strings.Join(blocks, "\n\n"), nil
}

// buildSourceText combines resolved content with any raw text supplied in the
// request. The result must be non-empty before the backend is touched.
func (s *aiService) buildSourceText(ctx context.Context, uow unitofwork.UnitOfWork, contentIds []uuid.UUID, rawText string) (string, error) {
	resolved, err := s.resolveContentText(ctx, uow, contentIds)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 2)
	if resolved != "" {
		parts = append(parts, resolved)
	}
	if trimmed := strings.TrimSpace(rawText); trimmed != "" {
		parts = append(parts, trimmed)
	}

	return strings.Join(parts, "\n\n"), nil
}

func firstContentId(ids []uuid.UUID) *uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	id := ids[0]
	return &id
}

// mapGenerationError turns the generation package's sentinels into the
// request-level taxonomy with a stable per-kind message.
func mapGenerationError(err error, kind string) error {
	if err == nil {
		return nil
	}
	message := "Failed to generate " + kind + ". Please try again."
	switch {
	case errors.Is(err, generation.ErrUnavailable):
		return apperrors.WithMessage(apperrors.ErrGenerationUnavailable, message)
	case errors.Is(err, generation.ErrBackend):
		return apperrors.WithMessage(apperrors.ErrGenerationBackend, message)
	case errors.Is(err, generation.ErrEmptyResponse):
		return apperrors.WithMessage(apperrors.ErrEmptyGeneration, message)
	default:
		return err
	}
}

func (s *aiService) publishArtifactEvent(ctx context.Context, userId uuid.UUID, kind string, artifactId uuid.UUID, fallback bool) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewBaseEvent(events.TypeArtifactGenerated, map[string]interface{}{
		"user_id":     userId.String(),
		"kind":        kind,
		"artifact_id": artifactId.String(),
		"fallback":    fallback,
	})
	_ = s.eventPublisher.Publish(ctx, evt)
}

func (s *aiService) GenerateFlashcards(ctx context.Context, userId uuid.UUID, req *dto.GenerateFlashcardsRequest) (*dto.GenerateFlashcardsResponse, error) {
	count := defaultFlashcardCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 1 || count > maxFlashcardCount {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "count must be between 1 and 20")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	text, err := s.buildSourceText(ctx, uow, req.ContentIds, req.TextContent)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrNoContent, "No content provided for flashcard generation")
	}

	result, err := s.generator.GenerateFlashcards(ctx, text, count)
	if err != nil {
		return nil, mapGenerationError(err, "flashcards")
	}

	contentId := firstContentId(req.ContentIds)
	now := time.Now()
	cards := make([]*entity.Flashcard, len(result.Value))
	for i, draft := range result.Value {
		front := draft.Front
		if front == "" {
			front = "Question"
		}
		back := draft.Back
		if back == "" {
			back = "Answer"
		}
		cards[i] = &entity.Flashcard{
			Id:         uuid.New(),
			Front:      front,
			Back:       back,
			Difficulty: 1,
			ContentId:  contentId,
			UserId:     userId,
			CreatedAt:  now,
		}
	}

	if err := uow.FlashcardRepository().CreateBulk(ctx, cards); err != nil {
		s.logger.Error("ai_service", "failed to persist flashcards", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.WithMessage(apperrors.ErrPersistence, "Failed to save generated flashcards. Please try again.")
	}

	if len(cards) > 0 {
		s.publishArtifactEvent(ctx, userId, "flashcard_set", cards[0].Id, result.Fallback)
	}

	res := make([]dto.FlashcardResponse, len(cards))
	for i, card := range cards {
		res[i] = dto.FlashcardResponse{
			Id:         card.Id,
			Front:      card.Front,
			Back:       card.Back,
			Difficulty: card.Difficulty,
			ContentId:  card.ContentId,
			CreatedAt:  card.CreatedAt,
		}
	}

	return &dto.GenerateFlashcardsResponse{Flashcards: res}, nil
}

func (s *aiService) GenerateQuiz(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	questionCount := defaultQuestionCount
	if req.QuestionCount != nil {
		questionCount = *req.QuestionCount
	}
	if questionCount < 1 || questionCount > maxQuestionCount {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "question_count must be between 1 and 15")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	text, err := s.buildSourceText(ctx, uow, req.ContentIds, req.TextContent)
	if err != nil {
		return nil, err
	}
	// A youtube url is appended as a literal label only; the video is never
	// fetched or transcribed.
	if req.YoutubeUrl != "" {
		label := "YouTube video: " + req.YoutubeUrl
		if text == "" {
			text = label
		} else {
			text = text + "\n\n" + label
		}
	}
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrNoContent, "No content provided for quiz generation")
	}

	result, err := s.generator.GenerateQuiz(ctx, text, questionCount)
	if err != nil {
		return nil, mapGenerationError(err, "quiz")
	}

	title := result.Value.Title
	if title == "" {
		title = "Generated Quiz"
	}
	questions := make([]entity.QuizQuestion, len(result.Value.Questions))
	for i, q := range result.Value.Questions {
		questions[i] = entity.QuizQuestion{
			Question:      q.Question,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}

	quiz := &entity.Quiz{
		Id:          uuid.New(),
		Title:       title,
		Description: result.Value.Description,
		Questions:   questions,
		ContentId:   firstContentId(req.ContentIds),
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
		s.logger.Error("ai_service", "failed to persist quiz", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.WithMessage(apperrors.ErrPersistence, "Failed to save generated quiz. Please try again.")
	}

	s.publishArtifactEvent(ctx, userId, "quiz", quiz.Id, result.Fallback)

	return &dto.GenerateQuizResponse{Quiz: quizToResponse(quiz)}, nil
}

func (s *aiService) GenerateSummary(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var contentIds []uuid.UUID
	if req.ContentId != nil {
		contentIds = []uuid.UUID{*req.ContentId}
	}

	text, err := s.buildSourceText(ctx, uow, contentIds, req.Text)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrNoContent, "No content provided for summary generation")
	}

	result, err := s.generator.GenerateSummary(ctx, text)
	if err != nil {
		return nil, mapGenerationError(err, "summary")
	}

	title := result.Value.Title
	if title == "" {
		title = "Generated Summary"
	}

	summary := &entity.Summary{
		Id:        uuid.New(),
		Title:     title,
		Content:   result.Value.Content,
		KeyPoints: result.Value.KeyPoints,
		ContentId: req.ContentId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.SummaryRepository().Create(ctx, summary); err != nil {
		s.logger.Error("ai_service", "failed to persist summary", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.WithMessage(apperrors.ErrPersistence, "Failed to save generated summary. Please try again.")
	}

	s.publishArtifactEvent(ctx, userId, "summary", summary.Id, result.Fallback)

	return &dto.GenerateSummaryResponse{Summary: summaryToResponse(summary)}, nil
}

func (s *aiService) GenerateMindMap(ctx context.Context, userId uuid.UUID, req *dto.GenerateMindMapRequest) (*dto.GenerateMindMapResponse, error) {
	if len(req.ContentIds) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "content_ids must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	text, err := s.resolveContentText(ctx, uow, req.ContentIds)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrNoContent, "No content found for the supplied ids")
	}

	result, err := s.generator.GenerateMindMap(ctx, text)
	if err != nil {
		return nil, mapGenerationError(err, "mind map")
	}

	title := result.Value.Title
	if title == "" {
		title = "Generated Mind Map"
	}
	nodes := make([]entity.MindMapNode, len(result.Value.Nodes))
	for i, n := range result.Value.Nodes {
		nodes[i] = entity.MindMapNode{
			Id:       n.Id,
			Label:    n.Label,
			Type:     n.Type,
			Position: entity.MindMapPosition{X: n.Position.X, Y: n.Position.Y},
		}
	}
	edges := make([]entity.MindMapEdge, len(result.Value.Edges))
	for i, e := range result.Value.Edges {
		edges[i] = entity.MindMapEdge{Id: e.Id, Source: e.Source, Target: e.Target}
	}

	mindMap := &entity.MindMap{
		Id:        uuid.New(),
		Title:     title,
		Nodes:     nodes,
		Edges:     edges,
		ContentId: firstContentId(req.ContentIds),
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.MindMapRepository().Create(ctx, mindMap); err != nil {
		s.logger.Error("ai_service", "failed to persist mind map", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.WithMessage(apperrors.ErrPersistence, "Failed to save generated mind map. Please try again.")
	}

	s.publishArtifactEvent(ctx, userId, "mindmap", mindMap.Id, result.Fallback)

	return &dto.GenerateMindMapResponse{MindMap: mindMapToResponse(mindMap)}, nil
}

func quizToResponse(quiz *entity.Quiz) dto.QuizResponse {
	questions := make([]dto.QuizQuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = dto.QuizQuestionResponse{
			Question:      q.Question,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return dto.QuizResponse{
		Id:          quiz.Id,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		ContentId:   quiz.ContentId,
		CreatedAt:   quiz.CreatedAt,
	}
}

func summaryToResponse(summary *entity.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Id:        summary.Id,
		Title:     summary.Title,
		Content:   summary.Content,
		KeyPoints: summary.KeyPoints,
		ContentId: summary.ContentId,
		CreatedAt: summary.CreatedAt,
	}
}

func mindMapToResponse(mindMap *entity.MindMap) dto.MindMapResponse {
	nodes := make([]dto.MindMapNodeResponse, len(mindMap.Nodes))
	for i, n := range mindMap.Nodes {
		nodes[i] = dto.MindMapNodeResponse{
			Id:       n.Id,
			Label:    n.Label,
			Type:     n.Type,
			Position: dto.MindMapPositionResponse{X: n.Position.X, Y: n.Position.Y},
		}
	}
	edges := make([]dto.MindMapEdgeResponse, len(mindMap.Edges))
	for i, e := range mindMap.Edges {
		edges[i] = dto.MindMapEdgeResponse{Id: e.Id, Source: e.Source, Target: e.Target}
	}
	return dto.MindMapResponse{
		Id:        mindMap.Id,
		Title:     mindMap.Title,
		Nodes:     nodes,
		Edges:     edges,
		ContentId: mindMap.ContentId,
		CreatedAt: mindMap.CreatedAt,
	}
}
