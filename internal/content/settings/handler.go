package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler encapsula los endpoints HTTP de ajustes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSetting endpoint GET /settings/:key
func (h *Handler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	value, found, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// ListSettings endpoint GET /settings
func (h *Handler) ListSettings(c *gin.Context) {
	all, err := h.service.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}

// PutSetting endpoint PUT /settings/:key
func (h *Handler) PutSetting(c *gin.Context) {
	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := c.Param("key")
	if err := h.service.Set(c.Request.Context(), key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

// DeleteSetting endpoint DELETE /settings/:key
func (h *Handler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	res, err := h.service.Delete(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.AffectedRows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
