package mapper

import (
	"encoding/json"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/model"

	"gorm.io/datatypes"
)

// Artifact mappers convert the generated-artifact entities to and from their
// gorm models. Structured fields (questions, key points, nodes, edges) are
// stored as jsonb; decode failures on read leave the field empty rather than
// failing the whole row.

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) ToEntity(f *model.Flashcard) *entity.Flashcard {
	if f == nil {
		return nil
	}
	return &entity.Flashcard{
		Id:         f.Id,
		Front:      f.Front,
		Back:       f.Back,
		Difficulty: f.Difficulty,
		ContentId:  f.ContentId,
		UserId:     f.UserId,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToModel(f *entity.Flashcard) *model.Flashcard {
	if f == nil {
		return nil
	}
	return &model.Flashcard{
		Id:         f.Id,
		Front:      f.Front,
		Back:       f.Back,
		Difficulty: f.Difficulty,
		ContentId:  f.ContentId,
		UserId:     f.UserId,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToEntities(cards []*model.Flashcard) []*entity.Flashcard {
	entities := make([]*entity.Flashcard, len(cards))
	for i, f := range cards {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FlashcardMapper) ToModels(cards []*entity.Flashcard) []*model.Flashcard {
	models := make([]*model.Flashcard, len(cards))
	for i, f := range cards {
		models[i] = m.ToModel(f)
	}
	return models
}

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}

	var questions []entity.QuizQuestion
	if len(q.Questions) > 0 {
		_ = json.Unmarshal(q.Questions, &questions)
	}

	return &entity.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		Questions:   questions,
		ContentId:   q.ContentId,
		UserId:      q.UserId,
		CreatedAt:   q.CreatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}

	var questions datatypes.JSON
	if q.Questions != nil {
		raw, err := json.Marshal(q.Questions)
		if err == nil {
			questions = datatypes.JSON(raw)
		}
	}

	return &model.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		Questions:   questions,
		ContentId:   q.ContentId,
		UserId:      q.UserId,
		CreatedAt:   q.CreatedAt,
	}
}

func (m *QuizMapper) ToEntities(quizzes []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, len(quizzes))
	for i, q := range quizzes {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

func (m *SummaryMapper) ToEntity(s *model.Summary) *entity.Summary {
	if s == nil {
		return nil
	}

	var keyPoints []string
	if len(s.KeyPoints) > 0 {
		_ = json.Unmarshal(s.KeyPoints, &keyPoints)
	}

	return &entity.Summary{
		Id:        s.Id,
		Title:     s.Title,
		Content:   s.Content,
		KeyPoints: keyPoints,
		ContentId: s.ContentId,
		UserId:    s.UserId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.Summary) *model.Summary {
	if s == nil {
		return nil
	}

	var keyPoints datatypes.JSON
	if s.KeyPoints != nil {
		raw, err := json.Marshal(s.KeyPoints)
		if err == nil {
			keyPoints = datatypes.JSON(raw)
		}
	}

	return &model.Summary{
		Id:        s.Id,
		Title:     s.Title,
		Content:   s.Content,
		KeyPoints: keyPoints,
		ContentId: s.ContentId,
		UserId:    s.UserId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SummaryMapper) ToEntities(summaries []*model.Summary) []*entity.Summary {
	entities := make([]*entity.Summary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type MindMapMapper struct{}

func NewMindMapMapper() *MindMapMapper {
	return &MindMapMapper{}
}

func (m *MindMapMapper) ToEntity(mm *model.MindMap) *entity.MindMap {
	if mm == nil {
		return nil
	}

	var nodes []entity.MindMapNode
	if len(mm.Nodes) > 0 {
		_ = json.Unmarshal(mm.Nodes, &nodes)
	}

	var edges []entity.MindMapEdge
	if len(mm.Edges) > 0 {
		_ = json.Unmarshal(mm.Edges, &edges)
	}

	return &entity.MindMap{
		Id:        mm.Id,
		Title:     mm.Title,
		Nodes:     nodes,
		Edges:     edges,
		ContentId: mm.ContentId,
		UserId:    mm.UserId,
		CreatedAt: mm.CreatedAt,
	}
}

func (m *MindMapMapper) ToModel(mm *entity.MindMap) *model.MindMap {
	if mm == nil {
		return nil
	}

	var nodes datatypes.JSON
	if mm.Nodes != nil {
		raw, err := json.Marshal(mm.Nodes)
		if err == nil {
			nodes = datatypes.JSON(raw)
		}
	}

	var edges datatypes.JSON
	if mm.Edges != nil {
		raw, err := json.Marshal(mm.Edges)
		if err == nil {
			edges = datatypes.JSON(raw)
		}
	}

	return &model.MindMap{
		Id:        mm.Id,
		Title:     mm.Title,
		Nodes:     nodes,
		Edges:     edges,
		ContentId: mm.ContentId,
		UserId:    mm.UserId,
		CreatedAt: mm.CreatedAt,
	}
}

func (m *MindMapMapper) ToEntities(maps []*model.MindMap) []*entity.MindMap {
	entities := make([]*entity.MindMap, len(maps))
	for i, mm := range maps {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}
