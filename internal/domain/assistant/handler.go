package assistant

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/ai/chat", h.Chat)
	api.GET("/ai/actions/:patientId", h.ListActions)
}

type chatRequest struct {
	PatientID string `json:"patientId"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Message   string    `json:"message"`
	ActionID  string    `json:"actionId"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat handles POST /ai/chat.
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	reply, action := h.engine.Chat(c.Request().Context(), req.PatientID, req.Message)
	return c.JSON(http.StatusOK, chatResponse{
		Message:   reply,
		ActionID:  action.ID,
		Timestamp: time.Now().UTC(),
	})
}

// ListActions handles GET /ai/actions/:patientId.
func (h *Handler) ListActions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.ListActions(c.Param("patientId")))
}
