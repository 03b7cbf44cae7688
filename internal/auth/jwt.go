package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"juggle-backend/internal/config"
)

// TokenType separates access tokens from refresh tokens. It is stored as the token audience.
type TokenType string

const (
	// AccessToken authenticates API calls.
	AccessToken TokenType = "access"
	// RefreshToken can only be exchanged for a new access token.
	RefreshToken TokenType = "refresh"
)

const issuer = "juggle"

// ErrWrongTokenType is returned by Validate when a token of the other type is presented.
var ErrWrongTokenType = errors.New("Token has wrong type")

// TokenPair is the body returned on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Tokens signs and validates HS256 tokens.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokens builds Tokens from the auth settings.
func NewTokens(cfg config.AuthConfig) *Tokens {
	return &Tokens{
		secret:     []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}
}

// Generate issues an access and a refresh token for userID.
func (t *Tokens) Generate(userID uuid.UUID) (TokenPair, error) {
	access, err := t.sign(userID, AccessToken, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.sign(userID, RefreshToken, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Access issues a single access token for userID.
func (t *Tokens) Access(userID uuid.UUID) (string, error) {
	return t.sign(userID, AccessToken, t.accessTTL)
}

func (t *Tokens) sign(userID uuid.UUID, typ TokenType, ttl time.Duration) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{string(typ)},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses encoded and checks its signature, expiry and type.
// Expired tokens yield an error matching jwt.ErrTokenExpired.
func (t *Tokens) Validate(encoded string, want TokenType) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(encoded, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Invalid token")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !claims.VerifyAudience(string(want), true) {
		return nil, ErrWrongTokenType
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("Invalid token")
	}
	return claims, nil
}

// UserID returns the subject of claims as a user id.
func UserID(claims *jwt.RegisteredClaims) (uuid.UUID, error) {
	return uuid.Parse(claims.Subject)
}
