package news

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/tablero/internal/store"
)

// Handler encapsula los endpoints HTTP de noticias.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// CreateNews endpoint POST /news
func (h *Handler) CreateNews(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetNews endpoint GET /news/:id
func (h *Handler) GetNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListNews endpoint GET /news?status=&page=&limit=&q=
// Con q presente delega en la búsqueda por subcadena.
func (h *Handler) ListNews(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		rows, err := h.service.Search(c.Request.Context(), term, c.Query("exact") == "true")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": rows})
		return
	}

	params := store.PaginationParams(c.Query("page"), c.Query("limit"))
	page, err := h.service.List(c.Request.Context(), c.Query("status"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateNews endpoint PUT /news/:id
func (h *Handler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title  *string `json:"title,omitempty"`
		Body   *string `json:"body,omitempty"`
		Status *string `json:"status,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := store.Record{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Body != nil {
		data["body"] = *req.Body
	}
	if req.Status != nil {
		data["status"] = *req.Status
	}

	res, err := h.service.Update(c.Request.Context(), id, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		// Inexistente o borrada lógicamente: en ambos casos no se muta.
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteNews endpoint DELETE /news/:id (borrado lógico)
func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// RestoreNews endpoint POST /news/:id/restore
func (h *Handler) RestoreNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// PurgeNews endpoint DELETE /news/:id/purge (borrado físico)
func (h *Handler) PurgeNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.service.Purge(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
