package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/api/respond"
	"github.com/alzcare/notifier/internal/middlewares"
	"github.com/alzcare/notifier/internal/model"
	reminderrepo "github.com/alzcare/notifier/internal/repository/reminder"
	remindersvc "github.com/alzcare/notifier/internal/service/reminder"
	"github.com/alzcare/notifier/pkg/kst"
)

// reminderService defines the scheduling operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	Create(ctx context.Context, userID, title, body, deepLink, sendAt string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch remindersvc.Patch) (model.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID string) ([]model.Reminder, error)
}

// Handler handles HTTP requests for scheduling reminders.
type Handler struct {
	service   reminderService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s reminderService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest represents the JSON body expected when scheduling a reminder.
type CreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body"`
	DeepLink string `json:"deepLink"`
	SendAt   string `json:"sendAt" validate:"required"`
}

// UpdateRequest represents the JSON body of a reminder patch. Absent fields
// are left untouched.
type UpdateRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	DeepLink *string `json:"deepLink"`
	SendAt   *string `json:"sendAt"`
}

type reminderItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	DeepLink string    `json:"deepLink,omitempty"`
	SendAt   string    `json:"sendAt"`
	Sent     bool      `json:"sent"`
}

func toItem(r model.Reminder) reminderItem {
	return reminderItem{
		ID:       r.ID,
		Title:    r.Title,
		Body:     r.Body,
		DeepLink: r.DeepLink,
		SendAt:   kst.Format(r.SendAt),
		Sent:     r.Sent,
	}
}

// Create handles HTTP POST requests to schedule a new reminder.
//
// It validates the request body and returns the created reminder ID.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	userID := c.GetString(middlewares.UserIDKey)

	id, err := h.service.Create(c.Request.Context(), userID, req.Title, req.Body, req.DeepLink, req.SendAt)
	if err != nil {
		if isValidationErr(err) {
			zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("rejected reminder")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to create reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]uuid.UUID{"id": id})
}

// Update handles HTTP PATCH requests to modify a pending reminder.
//
// Only the provided fields are applied. A reminder that has already been
// delivered cannot be changed.
func (h *Handler) Update(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	patch := remindersvc.Patch{
		Title:    req.Title,
		Body:     req.Body,
		DeepLink: req.DeepLink,
		SendAt:   req.SendAt,
	}

	updated, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, reminderrepo.ErrReminderNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
		case errors.Is(err, remindersvc.ErrAlreadySent):
			respond.Fail(c.Writer, http.StatusConflict, err)
		case isValidationErr(err):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update reminder")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, toItem(updated))
}

// Delete handles HTTP DELETE requests. Deleting a reminder that no longer
// exists succeeds.
func (h *Handler) Delete(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]bool{"success": true})
}

// List handles HTTP GET requests to list the caller's reminders.
func (h *Handler) List(c *ginext.Context) {
	userID := c.GetString(middlewares.UserIDKey)

	reminders, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	items := make([]reminderItem, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, toItem(r))
	}

	respond.OK(c.Writer, map[string][]reminderItem{"notifications": items})
}

func isValidationErr(err error) bool {
	return errors.Is(err, remindersvc.ErrEmptyTitle) ||
		errors.Is(err, remindersvc.ErrLeadTimeTooShort) ||
		errors.Is(err, remindersvc.ErrPastSendAt) ||
		errors.Is(err, kst.ErrBadTimeFormat)
}
