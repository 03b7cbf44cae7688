package business

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"juggle-backend/internal/auth"
	"juggle-backend/internal/catalog"
	"juggle-backend/internal/controller"
	"juggle-backend/internal/database"
	"juggle-backend/internal/middleware"
	"juggle-backend/internal/model"
	"juggle-backend/internal/query"
	"juggle-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct
var tokens = auth.TestTokens()

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
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

func newRouter() *gin.Engine {
	deps := controller.NewDeps(testDB, query.NewEngine(10, 100, "http://api.test"), catalog.Default())
	bc := NewBusinessController(deps)

	r := gin.New()
	v1 := r.Group("/v1", middleware.RequireAuth(testDB, tokens, nil))
	v1.GET("/business", bc.ListBusinessesHandler)
	v1.POST("/business", bc.CreateBusinessHandler)
	v1.GET("/business/:id", bc.GetBusinessHandler)
	v1.PUT("/business/:id", bc.UpdateBusinessHandler)
	v1.PATCH("/business/:id", bc.UpdateBusinessHandler)
	v1.GET("/business/:id/jobs", bc.ListJobsHandler)
	v1.POST("/business/:id/jobs", bc.CreateJobHandler)
	return r
}

func tokenFor(t *testing.T, user model.User) string {
	t.Helper()
	token, err := tokens.Access(user.ID)
	require.NoError(t, err)
	return token
}

func newBusiness(t *testing.T, owner model.User, name string) model.Business {
	t.Helper()
	b := model.Business{
		OwnerID:              owner.ID,
		EditableBusinessInfo: model.EditableBusinessInfo{CompanyName: name, Website: "https://" + strings.ToLower(name) + ".example"},
	}
	require.NoError(t, testDB.Create(&b).Error)
	return b
}

func TestCreateBusiness_success(t *testing.T) {
	r := newRouter()
	body := gin.H{"company_name": "Acme Hiring", "website": "https://acme.example"}

	rec, resp := testutil.MakeJSONRequest(body, tokenFor(t, database.TestUser1), r, "/v1/business", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme Hiring", resp["company_name"])
	assert.Equal(t, "https://acme.example", resp["website"])

	var stored model.Business
	require.NoError(t, testDB.First(&stored, uint(resp["business_id"].(float64))).Error)
	assert.Equal(t, database.TestUser1.ID, stored.OwnerID)
}

func TestCreateBusiness_missingField(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{"company_name": "No Site"}, tokenFor(t, database.TestUser1), r, "/v1/business", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []interface{}{"This field is required."}, resp["website"])
}

func TestCreateBusiness_invalidWebsite(t *testing.T) {
	r := newRouter()
	body := gin.H{"company_name": "Bad Site", "website": "not a url"}

	rec, resp := testutil.MakeJSONRequest(body, tokenFor(t, database.TestUser1), r, "/v1/business", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []interface{}{"Enter a valid URL."}, resp["website"])
}

func TestCreateBusiness_unauthenticated(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{"company_name": "x", "website": "https://x.example"}, "", r, "/v1/business", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBusinesses_onlyOwned(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONListRequest(nil, tokenFor(t, database.TestUser2), r, "/v1/business", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	ids := testutil.IDs(resp, "business_id")
	assert.Contains(t, ids, database.TestBusiness2.ID)
	assert.NotContains(t, ids, database.TestBusiness1.ID)
	assert.IsIncreasing(t, ids)
	assert.Equal(t, fmt.Sprint(len(ids)), rec.Header().Get(query.TotalCountHeader))
}

func TestListBusinesses_filterByCompanyName(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONListRequest(nil, tokenFor(t, database.TestUser1), r, "/v1/business?company_name=JUG", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestBusiness1.ID}, testutil.IDs(resp, "business_id"))
}

func TestGetBusiness(t *testing.T) {
	r := newRouter()
	token := tokenFor(t, database.TestUser2)

	t.Run("AnyAuthenticatedUser", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, fmt.Sprintf("/v1/business/%d", database.TestBusiness1.ID), http.MethodGet)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, database.TestBusiness1.CompanyName, resp["company_name"])
	})

	t.Run("NotFound", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/v1/business/999999", http.MethodGet)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Business not found", resp["error"])
	})

	t.Run("NonNumericID", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(nil, token, r, "/v1/business/abc", http.MethodGet)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateBusiness(t *testing.T) {
	r := newRouter()
	b := newBusiness(t, database.TestUser1, "Patchable")
	url := fmt.Sprintf("/v1/business/%d", b.ID)
	owner := tokenFor(t, database.TestUser1)

	t.Run("PatchKeepsOtherFields", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{"company_name": "Patched"}, owner, r, url, http.MethodPatch)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Patched", resp["company_name"])
		assert.Equal(t, b.Website, resp["website"])
	})

	t.Run("PutRequiresEveryField", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{"company_name": "Only name"}, owner, r, url, http.MethodPut)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp, "website")
	})

	t.Run("PutReplaces", func(t *testing.T) {
		body := gin.H{"company_name": "Replaced", "website": "https://replaced.example"}
		rec, resp := testutil.MakeJSONRequest(body, owner, r, url, http.MethodPut)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Replaced", resp["company_name"])
		assert.Equal(t, "https://replaced.example", resp["website"])
	})

	t.Run("ForbiddenForOthers", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{"company_name": "Hijack"}, tokenFor(t, database.TestUser2), r, url, http.MethodPatch)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var stored model.Business
		require.NoError(t, testDB.First(&stored, b.ID).Error)
		assert.Equal(t, "Replaced", stored.CompanyName)
	})
}

func TestCreateJob(t *testing.T) {
	r := newRouter()
	b := newBusiness(t, database.TestUser1, "Hiring")
	url := fmt.Sprintf("/v1/business/%d/jobs", b.ID)
	body := gin.H{
		"title":            "Platform Engineer",
		"daily_rate_range": "123.456",
		"availability_ids": []string{"2", "42"},
		"location_ids":     []string{"1"},
		"skills":           []string{"go", "kubernetes"},
	}

	t.Run("Success", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(body, tokenFor(t, database.TestUser1), r, url, http.MethodPost)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Platform Engineer", resp["title"])
		assert.Equal(t, "123.456", resp["daily_rate_range"])
		assert.Len(t, resp["availabilities"], 1, "unknown availability ids are dropped")
		assert.Equal(t, fmt.Sprintf("http://api.test/v1/jobs/%v", resp["job_id"]), rec.Header().Get("Location"))

		var stored model.Job
		require.NoError(t, testDB.First(&stored, uint(resp["job_id"].(float64))).Error)
		assert.Equal(t, b.ID, stored.BusinessID)
		assert.Equal(t, database.TestUser1.ID, stored.OwnerID)
	})

	t.Run("ExtraDecimalsAreRounded", func(t *testing.T) {
		precise := gin.H{}
		for k, v := range body {
			precise[k] = v
		}
		precise["daily_rate_range"] = 1.2345

		rec, resp := testutil.MakeJSONRequest(precise, tokenFor(t, database.TestUser1), r, url, http.MethodPost)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "1.235", resp["daily_rate_range"])
	})

	t.Run("InvalidRate", func(t *testing.T) {
		bad := gin.H{}
		for k, v := range body {
			bad[k] = v
		}
		bad["daily_rate_range"] = "lots"

		rec, resp := testutil.MakeJSONRequest(bad, tokenFor(t, database.TestUser1), r, url, http.MethodPost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []interface{}{"A valid number is required."}, resp["daily_rate_range"])
	})

	t.Run("ForbiddenForOthers", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(body, tokenFor(t, database.TestUser2), r, url, http.MethodPost)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("UnknownBusiness", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(body, tokenFor(t, database.TestUser1), r, "/v1/business/999999/jobs", http.MethodPost)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListBusinessJobs(t *testing.T) {
	r := newRouter()
	token := tokenFor(t, database.TestUser2)

	rec, resp := testutil.MakeJSONListRequest(nil, token, r, fmt.Sprintf("/v1/business/%d/jobs", database.TestBusiness2.ID), http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJob3.ID}, testutil.IDs(resp, "job_id"))
	assert.Equal(t, "1", rec.Header().Get(query.TotalCountHeader))
	assert.Contains(t, rec.Header().Get(query.LinkHeader), `rel="last"`)

	rec, _ = testutil.MakeJSONListRequest(nil, token, r, "/v1/business/999999/jobs", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBusinessJobs_pagination(t *testing.T) {
	r := newRouter()
	b := newBusiness(t, database.TestUser2, "Paged")
	for i := 0; i < 3; i++ {
		_, err := database.CreateTestJob(testDB, b, fmt.Sprintf("Paged job %d", i))
		require.NoError(t, err)
	}
	url := fmt.Sprintf("/v1/business/%d/jobs", b.ID)

	rec, resp := testutil.MakeJSONListRequest(nil, tokenFor(t, database.TestUser2), r, url+"?page=2&page_size=2", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp, 1)
	assert.Equal(t, "3", rec.Header().Get(query.TotalCountHeader))
	link := rec.Header().Get(query.LinkHeader)
	assert.Contains(t, link, `rel="first"`)
	assert.Contains(t, link, `rel="prev"`)
	assert.NotContains(t, link, `rel="next"`)
	assert.Contains(t, link, "http://api.test"+url+"?page=2&page_size=2>; rel=\"last\"")
}
