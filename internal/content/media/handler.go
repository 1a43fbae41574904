package media

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/tablero/internal/store"
)

// Handler encapsula los endpoints HTTP de media.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterMedia endpoint POST /media
func (h *Handler) RegisterMedia(c *gin.Context) {
	var req struct {
		Filename  string `json:"filename" binding:"required"`
		MimeType  string `json:"mime_type" binding:"required"`
		SizeBytes int64  `json:"size_bytes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, res, err := h.service.Register(c.Request.Context(), req.Filename, req.MimeType, req.SizeBytes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"object_key": key, "id": res.InsertID})
}

// GetMedia endpoint GET /media/lookup?key=
func (h *Handler) GetMedia(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing key"})
		return
	}

	item, err := h.service.FindByKey(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListMedia endpoint GET /media?mime_type=&page=&limit=
func (h *Handler) ListMedia(c *gin.Context) {
	params := store.PaginationParams(c.Query("page"), c.Query("limit"))
	page, err := h.service.List(c.Request.Context(), c.Query("mime_type"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeleteMedia endpoint DELETE /media/:id
func (h *Handler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
