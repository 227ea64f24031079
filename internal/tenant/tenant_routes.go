package tenant

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the registry. It needs no tenant header.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mws ...gin.HandlerFunc) {
	tenants := r.Group("/tenants")
	tenants.Use(mws...)
	{
		tenants.POST("", handler.Create)
		tenants.GET("", handler.GetAll)
		tenants.GET("/:id", handler.GetByID)
	}
}
