package auth

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"juggle-backend/internal/config"
	"juggle-backend/internal/database"
	"juggle-backend/internal/utilities"
)

// TestTokens returns Tokens signed with a fixed test secret.
func TestTokens() *Tokens {
	return NewTokens(config.AuthConfig{
		SecretKey:       "test-secret-key",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	tokens *Tokens,
	username string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db, tokens)
	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/v1/token", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	access, ok := resp["access"].(string)
	if !ok {
		return "", fmt.Errorf("login Failed: no access token in response: %s", rec.Body.String())
	}
	return access, nil
}
