// Package controller holds what the resource controllers share: their dependencies, path id
// parsing, owner checks and list responses.
package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"juggle-backend/internal/catalog"
	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
	"juggle-backend/internal/query"
	"juggle-backend/internal/utilities"
)

const foreignKeyViolation = "23503"

// Deps are the dependencies every resource controller needs.
type Deps struct {
	DB       *database.DBinstanceStruct
	Query    *query.Engine
	Catalogs catalog.Set
}

// NewDeps bundles the controller dependencies.
func NewDeps(db *database.DBinstanceStruct, engine *query.Engine, cats catalog.Set) Deps {
	return Deps{DB: db, Query: engine, Catalogs: cats}
}

// ParseID reads the numeric path parameter param. A value that is not a positive integer cannot
// name any record, so it is answered with 404 like a missing one.
func ParseID(c *gin.Context, param, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		NotFound(c, what)
		return 0, false
	}
	return uint(id), true
}

// NotFound writes a 404 naming the missing resource.
func NotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: fmt.Sprintf("%s not found", what)})
}

// DatabaseError writes a 500 for a failed store operation, or a 400 when a referenced record
// disappeared between the lookup and the write.
func DatabaseError(c *gin.Context, action string, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid reference: %s", pgErr.Detail),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
		Error: fmt.Sprintf("Failed to %s: %s", action, err.Error()),
	})
}

// Caller returns the authenticated user, writing a 401 when there is none.
func Caller(c *gin.Context) (model.User, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return model.User{}, false
	}
	return user, true
}

// RequireOwner writes a 403 unless the caller owns the record.
func RequireOwner(c *gin.Context, owner uuid.UUID) bool {
	user, ok := Caller(c)
	if !ok {
		return false
	}
	if user.ID != owner {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You do not have permission to perform this action.",
		})
		return false
	}
	return true
}

// Load fetches the record of type T with primary key id. It writes the 404 or 500 response and
// returns false when the record cannot be returned.
func Load[T any](c *gin.Context, db *gorm.DB, id uint, what string) (T, bool) {
	var record T
	err := db.WithContext(c.Request.Context()).First(&record, id).Error
	switch {
	case err == nil:
		return record, true
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, what)
	default:
		DatabaseError(c, "retrieve "+what, err)
	}
	return record, false
}

// List runs a collection request and writes the page: items as a JSON array plus the total
// count and Link headers. convert turns the page rows into their wire shape.
func List[T any, R any](c *gin.Context, d Deps, base *gorm.DB, filters query.FilterSet, convert func(context.Context, []T) ([]R, error)) {
	res, err := query.Find[T](c.Request.Context(), d.Query, base, filters, d.Query.FromHTTP(c.Request))
	if err != nil {
		DatabaseError(c, "list records", err)
		return
	}

	out, err := convert(c.Request.Context(), res.Items)
	if err != nil {
		DatabaseError(c, "list records", err)
		return
	}

	res.WriteHeaders(c.Writer.Header())
	c.JSON(http.StatusOK, out)
}

// JobFilters are the filters of every job collection.
var JobFilters = query.FilterSet{
	Table: "jobs",
	Filters: []query.Filter{
		{Param: "title", Column: "title", Lookup: query.Exact},
		{Param: "daily_rate_range", Column: "daily_rate_range", Lookup: query.DecimalExact},
		{Param: "min_created_datetime", Column: "created_at", Lookup: query.After},
		{Param: "max_created_datetime", Column: "created_at", Lookup: query.Before},
	},
}

// ProfessionalFilters are the filters of every professional collection.
var ProfessionalFilters = query.FilterSet{
	Table: "professionals",
	Filters: []query.Filter{
		{Param: "title", Column: "title", Lookup: query.Contains},
		{Param: "email", Column: "email", Lookup: query.Exact},
		{Param: "full_name", Column: "full_name", Lookup: query.Contains},
		{Param: "daily_rate_range", Column: "daily_rate_range", Lookup: query.DecimalExact},
		{Param: "min_created_datetime", Column: "created_at", Lookup: query.After},
		{Param: "max_created_datetime", Column: "created_at", Lookup: query.Before},
	},
}

// JobsConverter renders job rows.
func (d Deps) JobsConverter(_ context.Context, jobs []model.Job) ([]model.JobResponse, error) {
	return model.ToJobResponses(jobs, d.Catalogs), nil
}

// ProfessionalsConverter renders professional rows together with the jobs each applied to.
func (d Deps) ProfessionalsConverter(ctx context.Context, professionals []model.Professional) ([]model.ProfessionalResponse, error) {
	ids := make([]uint, 0, len(professionals))
	for _, p := range professionals {
		ids = append(ids, p.ID)
	}
	jobs, err := AppliedJobs(ctx, d.DB.DB, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]model.ProfessionalResponse, 0, len(professionals))
	for i := range professionals {
		out = append(out, professionals[i].ToResponse(d.Catalogs, jobs[professionals[i].ID]))
	}
	return out, nil
}

// AppliedJobs returns, per professional, the distinct jobs they applied to ordered by job id.
func AppliedJobs(ctx context.Context, db *gorm.DB, professionalIDs ...uint) (map[uint][]model.Job, error) {
	out := make(map[uint][]model.Job, len(professionalIDs))
	if len(professionalIDs) == 0 {
		return out, nil
	}

	var pairs []struct {
		ProfessionalID uint
		JobID          uint
	}
	if err := db.WithContext(ctx).Model(&model.Application{}).
		Distinct("professional_id", "job_id").
		Where("professional_id IN ?", professionalIDs).
		Order("job_id ASC").
		Find(&pairs).Error; err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return out, nil
	}

	jobIDs := make([]uint, 0, len(pairs))
	for _, p := range pairs {
		jobIDs = append(jobIDs, p.JobID)
	}
	var jobs []model.Job
	if err := db.WithContext(ctx).Where("id IN ?", jobIDs).Find(&jobs).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	for _, p := range pairs {
		if j, ok := byID[p.JobID]; ok {
			out[p.ProfessionalID] = append(out[p.ProfessionalID], j)
		}
	}
	return out, nil
}
