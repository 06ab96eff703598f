package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/jsfarah/interview_tracker_backend/controllers"
	"github.com/jsfarah/interview_tracker_backend/websocket"
)

// RegisterInterviewRequestRoutes configures the interview request API and the
// dashboard push channel
func RegisterInterviewRequestRoutes(e *echo.Echo, controller *controllers.InterviewRequestController, hub *websocket.Hub) {
	api := e.Group("/api")

	api.GET("/interview-requests", controller.GetInterviewRequests)
	api.POST("/interview-requests", controller.CreateInterviewRequest)
	api.PUT("/interview-requests/:id/accept", controller.AcceptInterviewRequest)

	// Push channel for connected dashboards (no authentication)
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub)
	})
}
