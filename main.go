package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/jsfarah/interview_tracker_backend/config"
	"github.com/jsfarah/interview_tracker_backend/controllers"
	"github.com/jsfarah/interview_tracker_backend/middleware"
	"github.com/jsfarah/interview_tracker_backend/models"
	"github.com/jsfarah/interview_tracker_backend/repositories"
	"github.com/jsfarah/interview_tracker_backend/routes"
	"github.com/jsfarah/interview_tracker_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	client := config.ConnectDB()

	// Create WebSocket hub for dashboard notifications
	wsHub := websocket.NewHub()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Initialize repositories
	requestRepo := repositories.NewInterviewRequestRepository(client)

	// Initialize controllers
	requestController := controllers.NewInterviewRequestController(requestRepo, wsHub)

	// Register routes
	routes.RegisterInterviewRequestRoutes(e, requestController, wsHub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
