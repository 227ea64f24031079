package attendance

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mws ...gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	attendance.Use(mws...)
	{
		attendance.POST("/shifts", handler.CreateShift)
		attendance.GET("/shifts", handler.GetShifts)

		attendance.POST("/timesheets", handler.CreateTimesheet)
		attendance.GET("/timesheets", handler.GetTimesheets)
		attendance.GET("/timesheets/:id", handler.GetTimesheetById)
		attendance.PATCH("/timesheets/:id/clock-in", handler.ClockIn)
		attendance.PATCH("/timesheets/:id/clock-out", handler.ClockOut)
	}
}
