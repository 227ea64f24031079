package leave

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mws ...gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(mws...)
	{
		leaves.POST("", handler.Create)
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.PATCH("/:id/approve", handler.Approve)
		leaves.PATCH("/:id/reject", handler.Reject)
		leaves.PATCH("/:id/cancel", handler.Cancel)
	}
}
