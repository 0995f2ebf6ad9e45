package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"organizo/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// devErrorsKey marks requests whose unexpected errors may be returned verbatim
const devErrorsKey = "devErrors"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`           // Human readable reason
	Code    string `json:"code,omitempty"`    // Storage error code
	Details string `json:"details,omitempty"` // Storage error details
}

// respondError translates err into a status code and body and aborts the request
func respondError(c *gin.Context, err error) {
	status, body := translate(err, c.GetBool(devErrorsKey))
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
	c.AbortWithStatusJSON(status, body)
}

// translate maps the error taxonomy to HTTP. Only development responses carry raw error text.
func translate(err error, dev bool) (int, ErrorResponse) {
	var verr *domain.ValidationError
	var serr *domain.StorageError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{Message: verr.Message}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Message: "Authentication required"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Message: "Record not found"}
	case errors.As(err, &serr):
		return translateStorage(serr, dev)
	}
	if dev {
		return http.StatusInternalServerError, ErrorResponse{Message: err.Error()}
	}
	return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
}

func translateStorage(serr *domain.StorageError, dev bool) (int, ErrorResponse) {
	switch serr.Kind {
	case domain.StorageConflict:
		return http.StatusConflict, ErrorResponse{Message: "Duplicate record", Details: serr.Details}
	case domain.StorageMalformed:
		return http.StatusBadRequest, ErrorResponse{Message: "Invalid input type", Details: serr.Details}
	case domain.StorageMissingTable:
		return http.StatusInternalServerError, ErrorResponse{Message: "Database table not found", Details: serr.Details}
	}
	if serr.Code == "" {
		// Uncoded failures are unexpected, e.g. a dropped connection
		if dev {
			return http.StatusInternalServerError, ErrorResponse{Message: serr.Error()}
		}
		return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
	}
	if dev {
		return http.StatusBadRequest, ErrorResponse{Message: serr.Message, Code: serr.Code, Details: serr.Details}
	}
	return http.StatusBadRequest, ErrorResponse{Message: "Database request failed", Code: serr.Code}
}

// badBody rejects a request body that is not valid JSON for the target type
func badBody(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}).Warn("Invalid request body")
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
}
