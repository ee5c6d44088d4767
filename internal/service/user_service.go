package service

import (
	"context"
	"time"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	CompleteOnboarding(ctx context.Context, userId uuid.UUID, req *dto.OnboardingRequest) (*dto.UserResponse, error)
	Stats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) CompleteOnboarding(ctx context.Context, userId uuid.UUID, req *dto.OnboardingRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "User not found")
	}

	user.Program = req.Program
	user.CurrentLevel = req.CurrentLevel
	user.DiscoverySource = req.DiscoverySource
	user.Goals = req.Goals
	now := time.Now()
	user.UpdatedAt = &now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := userToResponse(user)
	return &res, nil
}

func (s *userService) Stats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contentCount, err := uow.ContentRepository().Count(ctx, specification.UploadedBy{UploaderID: userId})
	if err != nil {
		return nil, err
	}

	owned := specification.OwnedByUser{UserID: userId}

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

	// Weekly activity counts artifacts produced in the last 7 days.
	weekAgo := specification.CreatedAfter{Time: time.Now().AddDate(0, 0, -7)}
	var weekly int64
	for _, count := range []func() (int64, error){
		func() (int64, error) { return uow.FlashcardRepository().Count(ctx, owned, weekAgo) },
		func() (int64, error) { return uow.QuizRepository().Count(ctx, owned, weekAgo) },
		func() (int64, error) { return uow.SummaryRepository().Count(ctx, owned, weekAgo) },
		func() (int64, error) { return uow.MindMapRepository().Count(ctx, owned, weekAgo) },
	} {
		n, err := count()
		if err != nil {
			return nil, err
		}
		weekly += n
	}

	return &dto.UserStatsResponse{
		ContentCount:   contentCount,
		FlashcardCount: flashcardCount,
		QuizCount:      quizCount,
		SummaryCount:   summaryCount,
		MindMapCount:   mindMapCount,
		WeeklyActivity: weekly,
	}, nil
}
