// Package response writes the JSON envelope every endpoint returns:
// {"success": bool, "message": string?, ...data}.
package response

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/apperr"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Envelope is the common response body. Data fields are merged into the top level.
type Envelope map[string]any

// ErrorResponse documents the failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success writes a successful envelope with the given status.
// Keys in data are merged next to "success" and "message".
func Success(c *gin.Context, status int, message string, data gin.H) {
	body := Envelope{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes a failure envelope with an explicit status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// Error classifies err and writes the matching failure envelope.
// Internal errors are logged with the request path; their detail never reaches the client.
func Error(c *gin.Context, logger *zap.SugaredLogger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal && logger != nil {
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	Fail(c, apperr.HTTPStatus(kind), apperr.PublicMessage(err))
}

// Abort is Error followed by c.Abort, for use in middleware.
func Abort(c *gin.Context, logger *zap.SugaredLogger, err error) {
	Error(c, logger, err)
	c.Abort()
}

// BindError converts a gin binding failure into a validation error with a
// field-specific message.
func BindError(err error) error {
	if verr := validation.FromValidator(err); verr != nil {
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.Validationf("%s has an invalid type", typeErr.Field)
	}
	if errors.Is(err, io.EOF) {
		return apperr.Validation("Request body is required")
	}
	return apperr.Wrap(apperr.KindValidation, "Invalid request body", err)
}
