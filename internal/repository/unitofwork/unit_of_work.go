package unitofwork

import (
	"context"

	"studentdrive-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContentRepository() contract.ContentRepository
	ContentEmbeddingRepository() contract.ContentEmbeddingRepository

	FlashcardRepository() contract.FlashcardRepository
	QuizRepository() contract.QuizRepository
	SummaryRepository() contract.SummaryRepository
	MindMapRepository() contract.MindMapRepository
}
