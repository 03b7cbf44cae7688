package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"juggle-backend/internal/auth"
	"juggle-backend/internal/config"
	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func protectedEngine(tokens *auth.Tokens) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testDB, tokens, nil), checkUserHandler)
	return r
}

func checkUserHandler(c *gin.Context) {
	u, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}

func serve(t *testing.T, engine *gin.Engine, authorization string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRequireAuth_Success(t *testing.T) {
	tokens := auth.TestTokens()
	token, err := auth.GetAccessToken(t, testDB, tokens, database.TestUser1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	rec, body := serve(t, protectedEngine(tokens), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["ok"])
	user, _ := body["user"].(map[string]interface{})
	assert.Equal(t, database.TestUser1.ID.String(), user["id"])
}

func TestRequireAuth_LowercaseScheme(t *testing.T) {
	tokens := auth.TestTokens()
	pair, err := tokens.Generate(database.TestUser1.ID)
	require.NoError(t, err)

	rec, _ := serve(t, protectedEngine(tokens), "bearer "+pair.Access)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_NoHeader(t *testing.T) {
	rec, body := serve(t, protectedEngine(auth.TestTokens()), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Invalid authorization header")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewTokens(config.AuthConfig{
		SecretKey:       "test-secret-key",
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	pair, err := expired.Generate(database.TestUser1.ID)
	require.NoError(t, err)

	rec, body := serve(t, protectedEngine(auth.TestTokens()), "Bearer "+pair.Access)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token expired", body["error"])
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := auth.TestTokens()
	pair, err := tokens.Generate(database.TestUser1.ID)
	require.NoError(t, err)

	rec, body := serve(t, protectedEngine(tokens), "Bearer "+pair.Access+"x")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body["error"], "Failed to validate token")
}

func TestRequireAuth_RefreshTokenRejected(t *testing.T) {
	tokens := auth.TestTokens()
	pair, err := tokens.Generate(database.TestUser1.ID)
	require.NoError(t, err)

	rec, body := serve(t, protectedEngine(tokens), "Bearer "+pair.Refresh)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid access token", body["error"])
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	tokens := auth.TestTokens()
	pair, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	rec, body := serve(t, protectedEngine(tokens), "Bearer "+pair.Access)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not exist", body["error"])
}

func TestRequireAuth_SetsClaims(t *testing.T) {
	tokens := auth.TestTokens()
	pair, err := tokens.Generate(database.TestUser2.ID)
	require.NoError(t, err)

	var seen model.User
	engine := gin.New()
	engine.GET("/protected", RequireAuth(testDB, tokens, nil), func(c *gin.Context) {
		_, ok := c.Get(auth.ContextClaimsKey)
		assert.True(t, ok)
		seen, _ = utilities.ExtractUser(c)
		c.Status(http.StatusNoContent)
	})

	rec, _ := serve(t, engine, "Bearer "+pair.Access)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, database.TestUser2.Username, seen.Username)
}
