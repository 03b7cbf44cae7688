// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"juggle-backend/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ContextUserKey is the gin context key RequireAuth stores the caller under.
const ContextUserKey = "user"

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get(ContextUserKey)
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}
