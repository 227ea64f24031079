package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mws ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(mws...)
	{
		employees.POST("", handler.Create)
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.PATCH("/:id/terminate", handler.Terminate)
	}
}
