package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"juggle-backend/internal/utilities"
)

// ContextClaimsKey is the gin context key RequireAuth stores the token claims under.
const ContextClaimsKey = "claims"

// LogoutController handles user logout by blacklisting JWT tokens
type LogoutController struct {
	BlacklistStore JwtBlacklistStore
}

// NewLogoutController creates a new instance of LogoutController
func NewLogoutController(blacklistStore JwtBlacklistStore) *LogoutController {
	return &LogoutController{
		BlacklistStore: blacklistStore,
	}
}

// LogoutHandler revokes the access token of the current request until it expires.
// @Summary Revoke the current access token
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Revocation store error"
// @Router /token/logout [post]
func (lc *LogoutController) LogoutHandler(c *gin.Context) {
	claims, err := extractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if err := lc.BlacklistStore.AddToBlacklist(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		logger.Error("failed to revoke token", "jti", claims.ID, "error", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to logout"})
		return
	}

	LogAuthAttempt("info", "Local", "Logout", claims.Subject, "")
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}

func extractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	if realClaims.ID == "" || realClaims.ExpiresAt == nil {
		return nil, fmt.Errorf("invalid token claims")
	}
	return realClaims, nil
}
