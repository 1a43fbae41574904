package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	group := r.Group("/settings")
	{
		group.GET("/", handler.ListSettings)
		group.GET("/:key", handler.GetSetting)
		group.PUT("/:key", handler.PutSetting)
		group.DELETE("/:key", handler.DeleteSetting)
	}
}
