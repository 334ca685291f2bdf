package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError writes the flat error envelope the mobile client expects.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP status
// codes at the route boundary. Storage failures are logged with full detail
// and surfaced as a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRequiredFields):
		RespondError(c, http.StatusBadRequest, "Missing required fields.")
	case errors.Is(err, ErrInvalidDate):
		RespondError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "User already exists with this email.")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found.")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "No plan found for this user.")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("path", c.FullPath()))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
