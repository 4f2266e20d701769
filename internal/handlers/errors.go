package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"irrigation-api/internal/apperrors"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error kind to its HTTP status code. This is the only
// place the taxonomy is translated; handlers never pick status codes ad hoc.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.KindAuthMissing:
		return http.StatusUnauthorized
	case apperrors.KindAuthInvalid:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed request
func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	entry := logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondErrorText writes a plain-text error body; the forecast endpoint
// keeps text bodies for failures while returning a JSON array on success.
func respondErrorText(c *gin.Context, err error) {
	status := statusFor(err)

	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	}).Warn("Request rejected")

	c.String(status, err.Error())
}
