package service

import (
	"context"
	"testing"
	"time"

	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/contract"
	"studentdrive-be/internal/repository/memory"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStudyStreak(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, offset)
	}

	tests := []struct {
		name   string
		recent []dto.RecentArtifact
		want   int
	}{
		{
			name:   "no artifacts",
			recent: nil,
			want:   0,
		},
		{
			name: "only today",
			recent: []dto.RecentArtifact{
				{Kind: "quiz", CreatedAt: day(0)},
			},
			want: 1,
		},
		{
			name: "three consecutive days",
			recent: []dto.RecentArtifact{
				{Kind: "quiz", CreatedAt: day(0)},
				{Kind: "summary", CreatedAt: day(-1)},
				{Kind: "mindmap", CreatedAt: day(-2)},
			},
			want: 3,
		},
		{
			name: "gap breaks the streak",
			recent: []dto.RecentArtifact{
				{Kind: "quiz", CreatedAt: day(0)},
				{Kind: "summary", CreatedAt: day(-2)},
			},
			want: 1,
		},
		{
			name: "yesterday only does not count",
			recent: []dto.RecentArtifact{
				{Kind: "quiz", CreatedAt: day(-1)},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studyStreak(tt.recent))
		})
	}
}

type dashboardCountRepo struct {
	count int64
}

type dashboardContentRepo struct {
	contract.ContentRepository
	dashboardCountRepo
}

func (r *dashboardContentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

type dashboardFlashcardRepo struct {
	contract.FlashcardRepository
	dashboardCountRepo
}

func (r *dashboardFlashcardRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

type dashboardQuizRepo struct {
	contract.QuizRepository
	dashboardCountRepo
	quizzes []*entity.Quiz
}

func (r *dashboardQuizRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

func (r *dashboardQuizRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	return r.quizzes, nil
}

type dashboardSummaryRepo struct {
	contract.SummaryRepository
	dashboardCountRepo
	summaries []*entity.Summary
}

func (r *dashboardSummaryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

func (r *dashboardSummaryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error) {
	return r.summaries, nil
}

type dashboardMindMapRepo struct {
	contract.MindMapRepository
	dashboardCountRepo
	mindMaps []*entity.MindMap
}

func (r *dashboardMindMapRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

func (r *dashboardMindMapRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MindMap, error) {
	return r.mindMaps, nil
}

type dashboardUow struct {
	unitofwork.UnitOfWork
	contents   *dashboardContentRepo
	flashcards *dashboardFlashcardRepo
	quizzes    *dashboardQuizRepo
	summaries  *dashboardSummaryRepo
	mindMaps   *dashboardMindMapRepo
}

func (u *dashboardUow) ContentRepository() contract.ContentRepository     { return u.contents }
func (u *dashboardUow) FlashcardRepository() contract.FlashcardRepository { return u.flashcards }
func (u *dashboardUow) QuizRepository() contract.QuizRepository           { return u.quizzes }
func (u *dashboardUow) SummaryRepository() contract.SummaryRepository     { return u.summaries }
func (u *dashboardUow) MindMapRepository() contract.MindMapRepository     { return u.mindMaps }

type dashboardUowFactory struct {
	uow   *dashboardUow
	calls int
}

func (f *dashboardUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.calls++
	return f.uow
}

func TestDashboardSummaryMergesRecentArtifacts(t *testing.T) {
	now := time.Now()
	uow := &dashboardUow{
		contents:   &dashboardContentRepo{dashboardCountRepo: dashboardCountRepo{count: 3}},
		flashcards: &dashboardFlashcardRepo{dashboardCountRepo: dashboardCountRepo{count: 12}},
		quizzes: &dashboardQuizRepo{
			dashboardCountRepo: dashboardCountRepo{count: 2},
			quizzes: []*entity.Quiz{
				{Id: uuid.New(), Title: "Quiz A", CreatedAt: now.Add(-1 * time.Hour)},
				{Id: uuid.New(), Title: "Quiz B", CreatedAt: now.Add(-5 * time.Hour)},
			},
		},
		summaries: &dashboardSummaryRepo{
			dashboardCountRepo: dashboardCountRepo{count: 1},
			summaries: []*entity.Summary{
				{Id: uuid.New(), Title: "Summary A", CreatedAt: now.Add(-2 * time.Hour)},
			},
		},
		mindMaps: &dashboardMindMapRepo{
			dashboardCountRepo: dashboardCountRepo{count: 1},
			mindMaps: []*entity.MindMap{
				{Id: uuid.New(), Title: "Map A", CreatedAt: now.Add(-3 * time.Hour)},
			},
		},
	}
	factory := &dashboardUowFactory{uow: uow}
	svc := NewDashboardService(factory, memory.NewDashboardCache())
	userId := uuid.New()

	res, err := svc.Summary(context.Background(), userId)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.ContentCount)
	assert.Equal(t, int64(12), res.FlashcardCount)
	assert.Equal(t, int64(2), res.QuizCount)

	// Merged across kinds, newest first.
	assert.Len(t, res.Recent, 4)
	assert.Equal(t, "Quiz A", res.Recent[0].Title)
	assert.Equal(t, "Summary A", res.Recent[1].Title)
	assert.Equal(t, "Map A", res.Recent[2].Title)
	assert.Equal(t, "Quiz B", res.Recent[3].Title)
	assert.Equal(t, 1, res.StudyStreak)
}

func TestDashboardSummaryIsCached(t *testing.T) {
	uow := &dashboardUow{
		contents:   &dashboardContentRepo{},
		flashcards: &dashboardFlashcardRepo{},
		quizzes:    &dashboardQuizRepo{},
		summaries:  &dashboardSummaryRepo{},
		mindMaps:   &dashboardMindMapRepo{},
	}
	factory := &dashboardUowFactory{uow: uow}
	svc := NewDashboardService(factory, memory.NewDashboardCache())
	userId := uuid.New()

	first, err := svc.Summary(context.Background(), userId)
	assert.NoError(t, err)

	second, err := svc.Summary(context.Background(), userId)
	assert.NoError(t, err)

	assert.Same(t, first, second, "second call serves the cached summary")
	assert.Equal(t, 1, factory.calls, "repositories hit once")
}
