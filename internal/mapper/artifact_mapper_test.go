package mapper

import (
	"testing"
	"time"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQuizMapperRoundTrip(t *testing.T) {
	contentId := uuid.New()
	quiz := &entity.Quiz{
		Id:          uuid.New(),
		Title:       "Cell Biology",
		Description: "Chapter 3 review",
		Questions: []entity.QuizQuestion{
			{
				Question:      "What organelle produces ATP?",
				Type:          "multiple_choice",
				Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi"},
				CorrectAnswer: "Mitochondria",
				Explanation:   "Mitochondria run cellular respiration.",
			},
			{
				Question:      "DNA lives in the nucleus.",
				Type:          "true_false",
				CorrectAnswer: "true",
			},
		},
		ContentId: &contentId,
		UserId:    uuid.New(),
		CreatedAt: time.Now().Truncate(time.Second),
	}

	m := NewQuizMapper()
	got := m.ToEntity(m.ToModel(quiz))

	assert.Equal(t, quiz.Id, got.Id)
	assert.Equal(t, quiz.Title, got.Title)
	assert.Equal(t, quiz.Description, got.Description)
	assert.Equal(t, quiz.Questions, got.Questions, "question order and fields survive the jsonb round trip")
	assert.Equal(t, contentId, *got.ContentId)
}

func TestQuizMapperNilQuestions(t *testing.T) {
	m := NewQuizMapper()

	quiz := &entity.Quiz{Id: uuid.New(), Title: "Empty"}
	got := m.ToEntity(m.ToModel(quiz))

	assert.Empty(t, got.Questions)
}

func TestQuizMapperCorruptJSONLeavesQuestionsEmpty(t *testing.T) {
	m := NewQuizMapper()

	got := m.ToEntity(&model.Quiz{
		Id:        uuid.New(),
		Title:     "Damaged",
		Questions: []byte("{not json"),
	})

	assert.Equal(t, "Damaged", got.Title)
	assert.Empty(t, got.Questions)
}

func TestMindMapMapperRoundTrip(t *testing.T) {
	mindMap := &entity.MindMap{
		Id:    uuid.New(),
		Title: "Ecosystems",
		Nodes: []entity.MindMapNode{
			{Id: "1", Label: "Ecosystem", Type: "topic", Position: entity.MindMapPosition{X: 0, Y: 0}},
			{Id: "2", Label: "Producers", Type: "subtopic", Position: entity.MindMapPosition{X: -200, Y: 100}},
		},
		Edges: []entity.MindMapEdge{
			{Id: "e1", Source: "1", Target: "2"},
		},
		UserId:    uuid.New(),
		CreatedAt: time.Now().Truncate(time.Second),
	}

	m := NewMindMapMapper()
	got := m.ToEntity(m.ToModel(mindMap))

	assert.Equal(t, mindMap.Nodes, got.Nodes)
	assert.Equal(t, mindMap.Edges, got.Edges)
}

func TestSummaryMapperRoundTrip(t *testing.T) {
	summary := &entity.Summary{
		Id:        uuid.New(),
		Title:     "Photosynthesis",
		Content:   "Plants convert light into sugar.",
		KeyPoints: []string{"chlorophyll", "light reactions"},
		UserId:    uuid.New(),
		CreatedAt: time.Now().Truncate(time.Second),
	}

	m := NewSummaryMapper()
	got := m.ToEntity(m.ToModel(summary))

	assert.Equal(t, summary.Title, got.Title)
	assert.Equal(t, summary.Content, got.Content)
	assert.Equal(t, summary.KeyPoints, got.KeyPoints)
}
