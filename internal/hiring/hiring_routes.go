package hiring

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mws ...gin.HandlerFunc) {
	hiring := r.Group("/hiring")
	hiring.Use(mws...)
	{
		hiring.POST("/postings", handler.CreatePosting)
		hiring.GET("/postings", handler.GetPostings)
		hiring.GET("/postings/:id", handler.GetPostingById)
		hiring.PATCH("/postings/:id", handler.UpdatePosting)

		hiring.POST("/candidates", handler.CreateCandidate)
		hiring.GET("/candidates", handler.GetCandidates)
		hiring.GET("/candidates/:id", handler.GetCandidateById)

		hiring.POST("/applications", handler.CreateApplication)
		hiring.GET("/applications", handler.GetApplications)
		hiring.GET("/applications/:id", handler.GetApplicationById)
		hiring.PATCH("/applications/:id", handler.UpdateApplication)
	}
}
