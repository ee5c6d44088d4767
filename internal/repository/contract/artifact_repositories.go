package contract

import (
	"context"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/specification"
)

// Generated artifacts are written exactly once and never updated; the
// contracts therefore expose Create plus read-side lookups only.

type FlashcardRepository interface {
	CreateBulk(ctx context.Context, cards []*entity.Flashcard) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *entity.Quiz) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quiz, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type MindMapRepository interface {
	Create(ctx context.Context, mindMap *entity.MindMap) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MindMap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MindMap, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
