package query

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"gorm.io/gorm"

	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var dbTeardown func(context.Context, ...testcontainers.TerminateOption) error
	dbTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if dbTeardown != nil {
		_ = dbTeardown(ctx)
	}
	os.Exit(code)
}

var jobFilters = FilterSet{
	Table: "jobs",
	Filters: []Filter{
		{Param: "title", Column: "title", Lookup: Exact},
		{Param: "daily_rate_range", Column: "daily_rate_range", Lookup: DecimalExact},
		{Param: "title_contains", Column: "title", Lookup: Contains},
		{Param: "min_created_datetime", Column: "created_at", Lookup: After},
		{Param: "max_created_datetime", Column: "created_at", Lookup: Before},
	},
}

func findJobs(t *testing.T, e *Engine, rawQuery string) Result[model.Job] {
	t.Helper()
	u := mustURL(t, "http://api.example/v1/jobs")
	u.RawQuery = rawQuery
	res, err := Find[model.Job](context.Background(), e, testDB.Model(&model.Job{}), jobFilters,
		Request{URL: u, Params: u.Query()})
	require.NoError(t, err)
	return res
}

func titles(jobs []model.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestFind_OrderedByID(t *testing.T) {
	res := findJobs(t, NewEngine(10, 100, ""), "")

	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, []string{"Fullstack Developer", "Backend Engineer", "Data Analyst"}, titles(res.Items))
	assert.Equal(t, 1, res.LastPage)
	assert.Empty(t, res.Links.Next)
	assert.Equal(t, "http://api.example/v1/jobs", res.Links.Last)
}

func TestFind_Filters(t *testing.T) {
	e := NewEngine(10, 100, "")

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"exact is case-insensitive", url.Values{"title": {"fullstack developer"}}, []string{"Fullstack Developer"}},
		{"exact does not match substrings", url.Values{"title": {"Fullstack"}}, []string{}},
		{"contains", url.Values{"title_contains": {"ENGINEER"}}, []string{"Backend Engineer"}},
		{"contains escapes wildcards", url.Values{"title_contains": {"%"}}, []string{}},
		{"decimal with fewer places", url.Values{"daily_rate_range": {"22.45"}}, []string{"Fullstack Developer"}},
		{"decimal integer", url.Values{"daily_rate_range": {"300"}}, []string{"Backend Engineer"}},
		{"created after now", url.Values{"min_created_datetime": {time.Now().UTC().Add(time.Hour).Format(time.RFC3339)}}, []string{}},
		{"created before now", url.Values{"max_created_datetime": {time.Now().UTC().Add(time.Hour).Format(time.RFC3339)}},
			[]string{"Fullstack Developer", "Backend Engineer", "Data Analyst"}},
		{"invalid date is empty", url.Values{"min_created_datetime": {"yesterday"}}, []string{}},
		{"invalid decimal is empty", url.Values{"daily_rate_range": {"cheap"}}, []string{}},
		{"decimal exponent", url.Values{"daily_rate_range": {"2.245e1"}}, []string{"Fullstack Developer"}},
		{"huge exponent is empty", url.Values{"daily_rate_range": {"1e20000000"}}, []string{}},
		{"tiny exponent is empty", url.Values{"daily_rate_range": {"1e-20000000"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := findJobs(t, e, tt.query.Encode())
			assert.Equal(t, tt.want, titles(res.Items))
			assert.Equal(t, int64(len(tt.want)), res.Total)
		})
	}
}

func TestFilterSet_RejectsOutOfRangeRate(t *testing.T) {
	dry := testDB.Session(&gorm.Session{DryRun: true})
	for _, v := range []string{"1e20000000", "1e-20000000", "123456789012345678"} {
		start := time.Now()
		_, err := jobFilters.Apply(dry, url.Values{"daily_rate_range": {v}})
		assert.ErrorIs(t, err, ErrInvalidFilter, v)
		assert.Less(t, time.Since(start), time.Second, v)
	}
}

func TestFind_InvalidFilterHasNoLinks(t *testing.T) {
	res := findJobs(t, NewEngine(10, 100, ""), "min_created_datetime=nope")

	assert.Zero(t, res.Total)
	assert.Equal(t, Links{}, res.Links)
	assert.NotNil(t, res.Items)
}

func TestFind_Pagination(t *testing.T) {
	e := NewEngine(2, 100, "")

	first := findJobs(t, e, "")
	assert.Equal(t, []string{"Fullstack Developer", "Backend Engineer"}, titles(first.Items))
	assert.Equal(t, 2, first.LastPage)
	assert.Empty(t, first.Links.First)
	assert.Empty(t, first.Links.Prev)
	assert.Equal(t, "http://api.example/v1/jobs?page=2", first.Links.Next)

	second := findJobs(t, e, "page=2")
	assert.Equal(t, []string{"Data Analyst"}, titles(second.Items))
	assert.Equal(t, "http://api.example/v1/jobs", second.Links.First)
	assert.Equal(t, "http://api.example/v1/jobs", second.Links.Prev)
	assert.Empty(t, second.Links.Next)
	assert.Equal(t, "http://api.example/v1/jobs?page=2", second.Links.Last)

	pastEnd := findJobs(t, e, "page=9")
	assert.Empty(t, pastEnd.Items)
	assert.Equal(t, int64(3), pastEnd.Total)
	assert.Equal(t, "http://api.example/v1/jobs?page=2", pastEnd.Links.Prev)
}

func TestFind_PageSizeParamIsCapped(t *testing.T) {
	res := findJobs(t, NewEngine(1, 2, ""), "page_size=50")

	assert.Equal(t, 2, res.PageSize)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.LastPage)
}
