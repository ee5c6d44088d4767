package dto

type SearchContentsRequest struct {
	Query string `query:"q" validate:"required,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchContentResult struct {
	Content ContentResponse `json:"content"`
	// Score is present only for semantic hits: 1 - cosine distance.
	Score *float64 `json:"score,omitempty"`
}

type SearchContentsResponse struct {
	Results  []SearchContentResult `json:"results"`
	Semantic bool                  `json:"semantic"`
}
