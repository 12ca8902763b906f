package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerboard/internal/content"
	"github.com/guttosm/tickerboard/internal/dashboard"
	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/gesture"
	"github.com/guttosm/tickerboard/internal/search"
	"github.com/guttosm/tickerboard/internal/upstream"
)

// Handler provides the HTTP handlers for the dashboard API.
//
// Responsibilities:
//   - Validate incoming request bodies and query parameters
//   - Feed input events (keystrokes, selections, gestures) into the store
//   - Translate store snapshots and upstream results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	store *dashboard.Store
	api   upstream.StockAPI
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - store (*dashboard.Store): The dashboard state container.
//   - api (upstream.StockAPI): Upstream client used for the synchronous
//     search endpoint.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(store *dashboard.Store, api upstream.StockAPI) *Handler {
	return &Handler{store: store, api: api}
}

// Search handles GET /api/v1/search requests: a synchronous symbol
// lookup, ranked by relevance. The debounced variant used by the
// dashboard's own search box is PostInput.
//
// Search godoc
// @Summary      Search for stock symbols
// @Description  Returns symbol suggestions ranked by relevance to the query
// @Tags         search
// @Produce      json
// @Param        q    query     string  true  "Search query" example(app)
// @Success      200  {object}  dto.SearchResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream Error"
// @Router       /api/v1/search [get]
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("q is required", nil))
		return
	}

	results, err := h.api.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("search failed", err))
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Query:       query,
		Suggestions: search.Rank(results, query),
	})
}

// PostInput handles POST /api/v1/dashboard/input requests.
//
// The keystroke is recorded immediately; the suggestion fetch itself is
// debounced inside the store, so this always returns 202 Accepted.
//
// PostInput godoc
// @Summary      Record a search keystroke
// @Description  Updates the search query; the suggestion fetch fires after the debounce quiet period
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.InputRequest  true  "Keystroke"
// @Success      202      {object}  map[string]string  "Accepted"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/dashboard/input [post]
func (h *Handler) PostInput(c *gin.Context) {
	var req dto.InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	h.store.Input(req.Query)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// PostSelect handles POST /api/v1/dashboard/select requests.
//
// PostSelect godoc
// @Summary      Select the active symbol
// @Description  Makes the symbol active, resets the window to the full span, and starts the news, history, prediction and quote fetches
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SelectRequest  true  "Symbol selection"
// @Success      202      {object}  map[string]string  "Accepted"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/dashboard/select [post]
func (h *Handler) PostSelect(c *gin.Context) {
	var req dto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	h.store.Select(symbol)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "symbol": symbol})
}

// PostWindow handles POST /api/v1/dashboard/window requests.
//
// PostWindow godoc
// @Summary      Select a chart window span
// @Description  Switches the window selector and re-fetches the history for the new span; news, prediction and quote are untouched
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.WindowRequest   true  "Window span (1y, 5y, 10y or max)"
// @Success      200      {object}  dto.WindowResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Bad Request"
// @Router       /api/v1/dashboard/window [post]
func (h *Handler) PostWindow(c *gin.Context) {
	var req dto.WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	w, err := models.ParseWindow(req.Window)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	changed := h.store.Window() != w
	h.store.SetWindow(w)
	c.JSON(http.StatusOK, dto.WindowResponse{Window: w, Changed: changed})
}

// PostGesture handles POST /api/v1/dashboard/gesture requests.
//
// PostGesture godoc
// @Summary      Feed one pinch gesture event
// @Description  Applies a start/move/end touch event to the zoom state machine; a move that crosses the pinch threshold steps the window span
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GestureRequest  true  "Gesture event"
// @Success      200      {object}  dto.WindowResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Bad Request"
// @Router       /api/v1/dashboard/gesture [post]
func (h *Handler) PostGesture(c *gin.Context) {
	var req dto.GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	switch req.Phase {
	case dashboard.GestureStart, dashboard.GestureMove, dashboard.GestureEnd:
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid gesture phase", nil))
		return
	}

	points := make([]gesture.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = gesture.Point{X: p.X, Y: p.Y}
	}

	w, changed := h.store.ApplyGesture(req.Phase, points)
	c.JSON(http.StatusOK, dto.WindowResponse{Window: w, Changed: changed})
}

// GetDashboard handles GET /api/v1/dashboard requests.
//
// GetDashboard godoc
// @Summary      Get the dashboard snapshot
// @Description  Returns the full render-ready dashboard state: suggestions, quote, news, windowed history, forecast, analysis summary, chart and per-panel status
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.Snapshot  "Success"
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// GetChart handles GET /api/v1/dashboard/chart requests. It returns only
// the composed chart series, for clients that poll the chart alone.
//
// GetChart godoc
// @Summary      Get the composed chart series
// @Description  Returns the chart labels and datasets for the current symbol, window and forecast
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.ChartSeries  "Success"
// @Router       /api/v1/dashboard/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Chart)
}

// GetEducation handles GET /api/v1/content/education requests.
//
// GetEducation godoc
// @Summary      Get educational topics
// @Description  Returns the static educational material shown in the learn section; pass id to fetch a single topic
// @Tags         content
// @Produce      json
// @Param        id   query     string  false  "Topic id" example(candlesticks)
// @Success      200  {object}  dto.EducationResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse      "Not Found"
// @Router       /api/v1/content/education [get]
func (h *Handler) GetEducation(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		topic := content.Find(id)
		if topic == nil {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("unknown topic", nil))
			return
		}
		c.JSON(http.StatusOK, dto.EducationResponse{Topics: []content.Topic{*topic}})
		return
	}
	c.JSON(http.StatusOK, dto.EducationResponse{Topics: content.Topics()})
}
