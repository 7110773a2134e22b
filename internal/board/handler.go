package board

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whisperboard/internal/logger"
	"whisperboard/pkg/errors"
)

type Handler struct {
	Service *Service
	Logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/messages", h.ListMessages)
	router.POST("/messages", h.CreateMessage)
}

func (h *Handler) HandleError(c *gin.Context, err error) {
	h.Logger.ErrorwCtx(c.Request.Context(), "Request error", "error", err, "path", c.Request.URL.Path)

	status := errors.ToHTTPStatus(err)
	response := errors.ToErrorResponse(err)

	c.JSON(status, response)
}

// ListMessages godoc
// @Summary      List all messages
// @Description  Get all messages in reverse-chronological order
// @Tags         messages
// @Produce      json
// @Success      200  {object}  ListResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Messages: messages})
}

// CreateMessage godoc
// @Summary      Submit a message
// @Description  Validate a submission and persist it to the record store
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        submission  body      Submission  true  "Submission data"
// @Success      201         {object}  CreateResult
// @Failure      400         {object}  map[string]interface{}
// @Failure      500         {object}  map[string]interface{}
// @Router       /messages [post]
func (h *Handler) CreateMessage(c *gin.Context) {
	// Misconfiguration wins over everything, including body parsing.
	if err := h.Service.Ready(); err != nil {
		h.HandleError(c, err)
		return
	}

	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result, err := h.Service.Create(c.Request.Context(), sub)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
