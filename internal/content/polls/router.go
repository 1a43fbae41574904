package polls

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	group := r.Group("/polls")
	{
		group.POST("/", handler.CreatePoll)
		group.GET("/", handler.ListPolls)
		group.GET("/:id", handler.GetPoll)
		group.GET("/:id/results", handler.Results)
		group.POST("/:id/publish", handler.PublishPoll)
		group.POST("/:id/restore", handler.RestorePoll)
		group.DELETE("/:id", handler.DeletePoll)
	}
	r.POST("/poll-options/:id/vote", handler.Vote)
}
