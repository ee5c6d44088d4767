package generation

// Draft types carry the shapes the model is asked to produce. They are
// transport-level structures; the service layer maps them onto entities.

type FlashcardDraft struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type QuizQuestionDraft struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"` // "multiple_choice" or "true_false"
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuizDraft struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []QuizQuestionDraft `json:"questions"`
}

type SummaryDraft struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	KeyPoints []string `json:"keyPoints"`
}

type PositionDraft struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MindMapNodeDraft struct {
	Id       string        `json:"id"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Position PositionDraft `json:"position"`
}

type MindMapEdgeDraft struct {
	Id     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type MindMapDraft struct {
	Title string             `json:"title"`
	Nodes []MindMapNodeDraft `json:"nodes"`
	Edges []MindMapEdgeDraft `json:"edges"`
}

// Result is the outcome of normalizing a raw model response. Fallback is true
// when the raw text could not be parsed as the target shape and a synthetic
// artifact embedding the raw text was returned instead. Both paths are valid,
// storable artifacts; the flag exists so callers and tests can tell them apart.
type Result[T any] struct {
	Value    T
	Fallback bool
}

func parsed[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func fallback[T any](v T) Result[T] {
	return Result[T]{Value: v, Fallback: true}
}
