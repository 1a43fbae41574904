package polls

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/tablero/internal/store"
)

func pageParams(c *gin.Context) store.PageParams {
	return store.PaginationParams(c.Query("page"), c.Query("limit"))
}

// Handler encapsula los endpoints HTTP de encuestas.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreatePoll endpoint POST /polls
func (h *Handler) CreatePoll(c *gin.Context) {
	var req struct {
		Title   string   `json:"title" binding:"required"`
		Options []string `json:"options" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.CreateWithOptions(c.Request.Context(), req.Title, req.Options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPoll endpoint GET /polls/:id
func (h *Handler) GetPoll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	poll, options, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if poll == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"poll": poll, "options": options})
}

// ListPolls endpoint GET /polls?status=&page=&limit=
func (h *Handler) ListPolls(c *gin.Context) {
	params := pageParams(c)
	page, err := h.service.List(c.Request.Context(), c.Query("status"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// PublishPoll endpoint POST /polls/:id/publish
func (h *Handler) PublishPoll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	res, err := h.service.Publish(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Vote endpoint POST /poll-options/:id/vote
func (h *Handler) Vote(c *gin.Context) {
	optionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid option id"})
		return
	}

	if err := h.service.Vote(c.Request.Context(), optionID, c.ClientIP()); err != nil {
		if err == ErrOptionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"voted": optionID})
}

// Results endpoint GET /polls/:id/results
func (h *Handler) Results(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	rows, err := h.service.Results(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}

// DeletePoll endpoint DELETE /polls/:id (borrado lógico)
func (h *Handler) DeletePoll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// RestorePoll endpoint POST /polls/:id/restore
func (h *Handler) RestorePoll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	res, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
