package dto

import (
	"github.com/guttosm/tickerboard/internal/content"
	"github.com/guttosm/tickerboard/internal/domain/models"
)

// SearchResponse is returned by GET /api/v1/search: the upstream
// suggestions, already ranked by relevance to the query.
type SearchResponse struct {
	Query       string                  `json:"query" example:"AAPL"`
	Suggestions []models.SuggestionItem `json:"suggestions"`
}

// WindowResponse reports the window selector after an input event that
// may have changed it (window selection or pinch gesture).
type WindowResponse struct {
	Window  models.Window `json:"window" swaggertype:"string" example:"1y"`
	Changed bool          `json:"changed"`
}

// EducationResponse wraps the static educational topics.
type EducationResponse struct {
	Topics []content.Topic `json:"topics"`
}

// InputRequest carries one search keystroke.
type InputRequest struct {
	Query string `json:"query" example:"app"`
}

// SelectRequest selects the active dashboard symbol.
type SelectRequest struct {
	Symbol string `json:"symbol" binding:"required" example:"AAPL"`
}

// WindowRequest selects a window span by its period string.
type WindowRequest struct {
	Window string `json:"window" binding:"required" example:"5y"`
}

// GestureRequest carries one touch event of a pinch gesture.
type GestureRequest struct {
	Phase  string         `json:"phase" binding:"required" example:"move"`
	Points []GesturePoint `json:"points"`
}

// GesturePoint is a single touch contact position.
type GesturePoint struct {
	X float64 `json:"x" example:"120.5"`
	Y float64 `json:"y" example:"340.0"`
}
