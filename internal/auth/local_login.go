package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

// LocalAuthHandler serves sign-up and username/password token endpoints.
type LocalAuthHandler struct {
	DB     *database.DBinstanceStruct
	Tokens *Tokens
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(db *database.DBinstanceStruct, tokens *Tokens) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB:     db,
		Tokens: tokens,
	}
}

const uniqueViolation = "23505"

type registerInfo struct {
	Username  *string `json:"username" binding:"omitnil,notblank,max=150"`
	Password  *string `json:"password" binding:"omitnil,min=1,max=128"`
	FirstName *string `json:"first_name" binding:"omitnil,max=150"`
	LastName  *string `json:"last_name" binding:"omitnil,max=150"`
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshInfo struct {
	Refresh string `json:"refresh" binding:"required"`
}

type accessResponse struct {
	Access string `json:"access"`
}

// RegisterHandler creates a user account.
// @Summary Sign up
// @Description Username must not already exist. Username and password must not be blank
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "New account"
// @Success 201 {object} model.User
// @Failure 400 {object} utilities.FieldErrors "Invalid or duplicate input"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /users [post]
func (lh *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info registerInfo
	if !utilities.BindPayload(c, &info, false) {
		return
	}
	username := strings.TrimSpace(*info.Username)

	var user model.User
	err := lh.DB.Where("username = ?", username).First(&user).Error

	switch {
	case err == nil:
		LogAuthAttempt("info", "Local", "Fail", username, "username taken")
		c.JSON(http.StatusBadRequest, utilities.FieldErrors{
			"username": {"A user with that username already exists."},
		})
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(*info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user = model.User{
		Username:  username,
		Password:  hashedPassword,
		FirstName: *info.FirstName,
		LastName:  *info.LastName,
	}
	if err := lh.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			LogAuthAttempt("info", "Local", "Fail", username, "username taken")
			c.JSON(http.StatusBadRequest, utilities.FieldErrors{
				"username": {"A user with that username already exists."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Local", "Register", username, "")
	c.JSON(http.StatusCreated, user)
}

// LoginHandler exchanges a username and password for a token pair.
// @Summary Obtain tokens
// @Description Username must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} TokenPair
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or token error"
// @Router /token [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Where("username = ?", info.Username).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt("info", "Local", "Fail", info.Username, "unknown username")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt("info", "Local", "Fail", info.Username, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	pair, err := lh.Tokens.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Local", "Success", info.Username, "")
	c.JSON(http.StatusOK, pair)
}

// RefreshHandler exchanges a refresh token for a new access token.
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body refreshInfo true "Refresh token"
// @Success 200 {object} accessResponse
// @Failure 400 {object} utilities.ErrorResponse "Refresh token not provided"
// @Failure 401 {object} utilities.ErrorResponse "Refresh token invalid or expired"
// @Router /token/refresh [post]
func (lh *LocalAuthHandler) RefreshHandler(c *gin.Context) {
	var info refreshInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Refresh token is not provided",
		})
		return
	}

	claims, err := lh.Tokens.Validate(info.Refresh, RefreshToken)
	if err != nil {
		msg := "Token is invalid or expired"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Refresh token expired"
		}
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: msg})
		return
	}

	userID, err := UserID(claims)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Token is invalid or expired"})
		return
	}

	var user model.User
	if err := lh.DB.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "User not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	access, err := lh.Tokens.Access(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, accessResponse{Access: access})
}
