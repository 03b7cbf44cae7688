package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juggle-backend/internal/database"
)

func logoutContext(t *testing.T, claims interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(http.MethodPost, "/v1/token/logout", nil)
	require.NoError(t, err)
	c.Request = req
	if claims != nil {
		c.Set(ContextClaimsKey, claims)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLogoutSuccess(t *testing.T) {
	tokens := TestTokens()
	accessToken, err := GetAccessToken(t, testDB, tokens, database.TestUser1.Username, database.TestSeedPassword)
	require.NoError(t, err)
	claims, err := tokens.Validate(accessToken, AccessToken)
	require.NoError(t, err)

	blacklistStore := NewInMemoryBlacklistStore(time.Minute)
	defer blacklistStore.Stop()
	logoutController := NewLogoutController(blacklistStore)

	c, rec := logoutContext(t, claims)
	logoutController.LogoutHandler(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully logged out", decodeBody(t, rec)["message"])

	isBlacklisted, err := blacklistStore.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, isBlacklisted, "Token should be blacklisted after logout")
}

func TestLogoutMissingClaims(t *testing.T) {
	blacklistStore := NewInMemoryBlacklistStore(time.Minute)
	defer blacklistStore.Stop()

	c, rec := logoutContext(t, nil)
	NewLogoutController(blacklistStore).LogoutHandler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token claims", decodeBody(t, rec)["error"])
}

func TestLogoutInvalidClaimsType(t *testing.T) {
	blacklistStore := NewInMemoryBlacklistStore(time.Minute)
	defer blacklistStore.Stop()

	c, rec := logoutContext(t, "invalid_claims_type")
	NewLogoutController(blacklistStore).LogoutHandler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token claims type", decodeBody(t, rec)["error"])
}

func TestLogoutBlacklistStoreError(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		ID:        "jti-1",
		Subject:   database.TestUser1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	mockStore := &MockBlacklistStore{addError: fmt.Errorf("database connection failed")}

	c, rec := logoutContext(t, claims)
	NewLogoutController(mockStore).LogoutHandler(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to logout", decodeBody(t, rec)["error"])
}

func TestLogoutOnlyRevokesPresentedToken(t *testing.T) {
	tokens := TestTokens()
	first, err := tokens.Generate(database.TestUser2.ID)
	require.NoError(t, err)
	second, err := tokens.Generate(database.TestUser2.ID)
	require.NoError(t, err)

	blacklistStore := NewInMemoryBlacklistStore(time.Minute)
	defer blacklistStore.Stop()

	firstClaims, err := tokens.Validate(first.Access, AccessToken)
	require.NoError(t, err)
	c, rec := logoutContext(t, firstClaims)
	NewLogoutController(blacklistStore).LogoutHandler(c)
	require.Equal(t, http.StatusOK, rec.Code)

	secondClaims, err := tokens.Validate(second.Access, AccessToken)
	require.NoError(t, err)
	revoked, err := blacklistStore.IsBlacklisted(context.Background(), secondClaims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestExtractClaims(t *testing.T) {
	t.Run("ValidClaims", func(t *testing.T) {
		expectedClaims := &jwt.RegisteredClaims{
			ID:        "abc",
			Subject:   "test-user-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		c, _ := logoutContext(t, expectedClaims)

		claims, err := extractClaims(c)
		assert.NoError(t, err)
		assert.Equal(t, expectedClaims.Subject, claims.Subject)
	})

	t.Run("MissingID", func(t *testing.T) {
		c, _ := logoutContext(t, &jwt.RegisteredClaims{Subject: "x"})

		claims, err := extractClaims(c)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("MissingClaims", func(t *testing.T) {
		c, _ := logoutContext(t, nil)

		claims, err := extractClaims(c)
		assert.Nil(t, claims)
		assert.EqualError(t, err, "invalid token claims")
	})
}

// MockBlacklistStore is a mock implementation of JwtBlacklistStore for testing error scenarios
type MockBlacklistStore struct {
	blacklisted map[string]time.Time
	addError    error
	checkError  error
}

func (m *MockBlacklistStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	if m.checkError != nil {
		return false, m.checkError
	}
	_, exists := m.blacklisted[jti]
	return exists, nil
}

func (m *MockBlacklistStore) AddToBlacklist(_ context.Context, jti string, exp time.Time) error {
	if m.addError != nil {
		return m.addError
	}
	if m.blacklisted == nil {
		m.blacklisted = make(map[string]time.Time)
	}
	m.blacklisted[jti] = exp
	return nil
}
