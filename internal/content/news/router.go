package news

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	group := r.Group("/news")
	{
		group.POST("/", handler.CreateNews)
		group.GET("/", handler.ListNews)
		group.GET("/:id", handler.GetNews)
		group.PUT("/:id", handler.UpdateNews)
		group.POST("/:id/restore", handler.RestoreNews)
		group.DELETE("/:id", handler.DeleteNews)
		group.DELETE("/:id/purge", handler.PurgeNews)
	}
}
