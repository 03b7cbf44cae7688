package utilities

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juggle-backend/internal/model"
)

func bindRequest(t *testing.T, body string, dst interface{}, partial bool) (bool, FieldErrors) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))

	ok := BindPayload(c, dst, partial)
	if ok {
		return true, nil
	}
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errs FieldErrors
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	return false, errs
}

func TestBindPayload_Valid(t *testing.T) {
	var in model.ProfessionalInput
	ok, _ := bindRequest(t, `{
		"full_name": "Ada Lovelace",
		"email": "ada@example.com",
		"title": "Engineer",
		"daily_rate_range": 22.45,
		"availability_ids": ["1"],
		"location_ids": []
	}`, &in, false)

	assert.True(t, ok)
	assert.Equal(t, "22.450", in.DailyRateRange.String())
}

func TestBindPayload_MissingAndInvalid(t *testing.T) {
	var in model.ProfessionalInput
	ok, errs := bindRequest(t, `{"full_name": "Ada", "email": "not-an-email"}`, &in, false)

	assert.False(t, ok)
	assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
	assert.Equal(t, []string{"This field is required."}, errs["title"])
	assert.Equal(t, []string{"This field is required."}, errs["daily_rate_range"])
	assert.NotContains(t, errs, "full_name")
}

func TestBindPayload_PartialSkipsRequired(t *testing.T) {
	var in model.JobInput
	ok, _ := bindRequest(t, `{"title": "Backend"}`, &in, true)
	assert.True(t, ok)

	in = model.JobInput{}
	ok, _ = bindRequest(t, ``, &in, true)
	assert.True(t, ok)
}

func TestBindPayload_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad rate", `{"daily_rate_range": "abc"}`, "daily_rate_range"},
		{"wrong type", `{"title": 12}`, "title"},
		{"syntax", `{"title": `, NonFieldErrorsKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in model.JobInput
			ok, errs := bindRequest(t, tt.body, &in, true)
			assert.False(t, ok)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestBindPayload_IgnoresUnknownKeys(t *testing.T) {
	var in model.JobInput
	ok, _ := bindRequest(t, `{"title": "Backend", "job_id": 7, "salary": "1", "availabilities": []}`, &in, true)

	assert.True(t, ok)
	require.NotNil(t, in.Title)
	assert.Equal(t, "Backend", *in.Title)
}

func TestBindPayload_NotBlank(t *testing.T) {
	var in struct {
		Name *string `json:"name" binding:"omitnil,notblank"`
	}
	ok, errs := bindRequest(t, `{"name": "   "}`, &in, false)

	assert.False(t, ok)
	assert.Equal(t, []string{"This field may not be blank."}, errs["name"])
}

func TestBindPayload_TitleTooLong(t *testing.T) {
	var in model.JobInput
	long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijX"
	ok, errs := bindRequest(t, `{"title": "`+long+`"}`, &in, true)

	assert.False(t, ok)
	assert.Equal(t, []string{"Ensure this field has no more than 50 characters."}, errs["title"])
}
