package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jsfarah/interview_tracker_backend/models"
	"github.com/jsfarah/interview_tracker_backend/repositories"
	"github.com/jsfarah/interview_tracker_backend/websocket"
)

// InterviewRequestStore is the persistence surface the controller needs.
// *repositories.InterviewRequestRepository satisfies it.
type InterviewRequestStore interface {
	FindAll(ctx context.Context) ([]models.InterviewRequest, error)
	Insert(ctx context.Context, name, email, jobTitle string) (*models.InterviewRequest, error)
	Accept(ctx context.Context, id string) (*models.InterviewRequest, error)
}

// Notifier broadcasts an event to all connected dashboards. *websocket.Hub
// satisfies it.
type Notifier interface {
	Broadcast(notification websocket.Notification)
}

// InterviewRequestController handles the interview request API endpoints
type InterviewRequestController struct {
	store    InterviewRequestStore
	notifier Notifier
}

// NewInterviewRequestController creates a new interview request controller
func NewInterviewRequestController(store InterviewRequestStore, notifier Notifier) *InterviewRequestController {
	return &InterviewRequestController{store: store, notifier: notifier}
}

// GetInterviewRequests returns all interview requests, newest first
func (ic *InterviewRequestController) GetInterviewRequests(c echo.Context) error {
	requests, err := ic.store.FindAll(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching interview requests: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to fetch interview requests",
		})
	}

	return c.JSON(http.StatusOK, requests)
}

// CreateInterviewRequest handles a new applicant submission
func (ic *InterviewRequestController) CreateInterviewRequest(c echo.Context) error {
	var req models.CreateInterviewRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "All fields are required",
		})
	}

	// Presence checks only; whitespace-only counts as absent
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "All fields are required",
		})
	}

	created, err := ic.store.Insert(c.Request().Context(), req.Name, req.Email, req.JobTitle)
	if err != nil {
		log.Printf("Error creating interview request: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to submit interview request",
		})
	}

	// Best-effort push; the dashboard's polling picks up anything missed
	ic.notifier.Broadcast(websocket.Notification{
		Type:    websocket.NotificationTypeNewRequest,
		Message: "New interview request received",
		Data:    created,
	})

	return c.JSON(http.StatusCreated, created)
}

// AcceptInterviewRequest marks a request as accepted
func (ic *InterviewRequestController) AcceptInterviewRequest(c echo.Context) error {
	id := c.Param("id")

	updated, err := ic.store.Accept(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Interview request not found",
			})
		}
		log.Printf("Error accepting interview request %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to accept interview request",
		})
	}

	ic.notifier.Broadcast(websocket.Notification{
		Type:    websocket.NotificationTypeStatusUpdated,
		Message: "Interview request status updated",
		Data:    updated,
	})

	return c.JSON(http.StatusOK, updated)
}
