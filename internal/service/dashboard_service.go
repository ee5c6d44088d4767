package service

import (
	"context"
	"sort"
	"time"

	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/repository/memory"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const recentArtifactLimit = 5

type IDashboardService interface {
	Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.DashboardCache
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, cache *memory.DashboardCache) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *dashboardService) Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	if cached, found := s.cache.Get(userId); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedByUser{UserID: userId}

	contentCount, err := uow.ContentRepository().Count(ctx, specification.UploadedBy{UploaderID: userId})
	if err != nil {
		return nil, err
	}
	flashcardCount, err := uow.FlashcardRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	quizCount, err := uow.QuizRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	summaryCount, err := uow.SummaryRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	mindMapCount, err := uow.MindMapRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentArtifacts(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		ContentCount:   contentCount,
		FlashcardCount: flashcardCount,
		QuizCount:      quizCount,
		SummaryCount:   summaryCount,
		MindMapCount:   mindMapCount,
		StudyStreak:    studyStreak(recent),
		Recent:         recent,
		GeneratedAt:    time.Now(),
	}

	s.cache.Save(userId, summary)
	return summary, nil
}

func (s *dashboardService) recentArtifacts(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]dto.RecentArtifact, error) {
	owned := specification.OwnedByUser{UserID: userId}
	newest := specification.OrderByNewest{}
	limit := specification.Limit{N: recentArtifactLimit}

	var recent []dto.RecentArtifact

	quizzes, err := uow.QuizRepository().FindAll(ctx, owned, newest, limit)
	if err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		recent = append(recent, dto.RecentArtifact{Kind: "quiz", Title: q.Title, CreatedAt: q.CreatedAt})
	}

	summaries, err := uow.SummaryRepository().FindAll(ctx, owned, newest, limit)
	if err != nil {
		return nil, err
	}
	for _, sm := range summaries {
		recent = append(recent, dto.RecentArtifact{Kind: "summary", Title: sm.Title, CreatedAt: sm.CreatedAt})
	}

	mindMaps, err := uow.MindMapRepository().FindAll(ctx, owned, newest, limit)
	if err != nil {
		return nil, err
	}
	for _, m := range mindMaps {
		recent = append(recent, dto.RecentArtifact{Kind: "mindmap", Title: m.Title, CreatedAt: m.CreatedAt})
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentArtifactLimit {
		recent = recent[:recentArtifactLimit]
	}
	return recent, nil
}

// studyStreak counts consecutive days, ending today, with at least one
// artifact among the recent ones. Cheap approximation over the recent window.
func studyStreak(recent []dto.RecentArtifact) int {
	days := make(map[string]bool, len(recent))
	for _, r := range recent {
		days[r.CreatedAt.Format("2006-01-02")] = true
	}

	streak := 0
	for d := time.Now(); days[d.Format("2006-01-02")]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
