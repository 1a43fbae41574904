package media

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	group := r.Group("/media")
	{
		group.POST("/", handler.RegisterMedia)
		group.GET("/", handler.ListMedia)
		group.GET("/lookup", handler.GetMedia)
		group.DELETE("/:id", handler.DeleteMedia)
	}
}
