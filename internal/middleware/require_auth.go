// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"juggle-backend/internal/auth"
	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

// RequireAuth validates the Bearer access token in the Authorization header, rejects it if its jti
// was revoked by logout, and loads the user it was issued to. The revocation check runs before the
// user is read from the database. A nil revoked store skips that check. The claims and the user are
// stored on the context for later handlers.
func RequireAuth(db *database.DBinstanceStruct, tokens *auth.Tokens, revoked auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		claims, err := tokens.Validate(tokenString, auth.AccessToken)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Access token expired",
				})
			case errors.Is(err, auth.ErrWrongTokenType):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Invalid access token",
				})
			default:
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: fmt.Sprintf("Failed to validate token: %s", err.Error()),
				})
			}
			return
		}
		if revoked != nil {
			isBlacklisted, err := revoked.IsBlacklisted(ctx.Request.Context(), claims.ID)
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
					Error: fmt.Sprintf("Failed to validate token: %s", err.Error()),
				})
				return
			}
			if isBlacklisted {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Token has been revoked",
				})
				return
			}
		}
		ctx.Set(auth.ContextClaimsKey, claims)

		userID, err := auth.UserID(claims)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		var foundUser model.User
		if err := db.WithContext(ctx.Request.Context()).Where("id = ?", userID).First(&foundUser).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "User not exist",
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve user data: %s", err.Error()),
			})
			return
		}

		ctx.Set(utilities.ContextUserKey, foundUser)
		ctx.Next()
	}
}
