package devicetoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/api/respond"
	"github.com/alzcare/notifier/internal/middlewares"
	"github.com/alzcare/notifier/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/devicetoken/mock.go -package=mocks
type tokenStore interface {
	Upsert(ctx context.Context, t model.DeviceToken) error
}

// Handler registers push tokens for the authenticated user's devices.
type Handler struct {
	tokens    tokenStore
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(t tokenStore, v *validator.Validate) *Handler {
	return &Handler{tokens: t, validator: v}
}

// RegisterRequest represents the JSON body of a token registration request.
type RegisterRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	Timezone string `json:"timezone"`
}

// Register handles HTTP POST requests to register a device push token.
//
// Re-registering an existing token reactivates it.
func (h *Handler) Register(c *ginext.Context) {
	var req RegisterRequest

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

	t := model.DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		Platform: req.Platform,
		Timezone: req.Timezone,
		Active:   true,
	}

	if err := h.tokens.Upsert(c.Request.Context(), t); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to register device token")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]bool{"success": true})
}
