package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

// Response messages. Login and task lookups deliberately use one message
// per outcome so callers cannot tell which part failed.
const (
	msgNoToken            = "No token, authorization denied"
	msgInvalidToken       = "Token is not valid"
	msgInvalidBody        = "Invalid request body"
	msgMissingFields      = "Username, email and password are required"
	msgUserExists         = "User already exists"
	msgRegistered         = "User registered successfully"
	msgInvalidCredentials = "Invalid credentials"
	msgLoggedOut          = "Logged out successfully"
	msgTitleRequired      = "Title is required"
	msgTaskNotFound       = "Task not found"
	msgTaskDeleted        = "Task deleted successfully"
	msgInternal           = "Internal server error"
)

func message(msg string) gin.H {
	return gin.H{"message": msg}
}

// abortWithError maps a service error onto a status code and a fixed
// message. The underlying error only goes to the log.
func (s *HTTPServer) abortWithError(c *gin.Context, err error, validationMsg string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, message(validationMsg))
	case errors.Is(err, common.ErrDuplicateEmail):
		c.AbortWithStatusJSON(http.StatusBadRequest, message(msgUserExists))
	case errors.Is(err, common.ErrorUnauthorized):
		c.AbortWithStatusJSON(http.StatusBadRequest, message(msgInvalidCredentials))
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, message(msgTaskNotFound))
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, message(msgInternal))
	}
}
