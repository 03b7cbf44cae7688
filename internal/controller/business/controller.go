// Package business provides HTTP handlers for businesses and the jobs they post.
package business

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"juggle-backend/internal/controller"
	"juggle-backend/internal/model"
	"juggle-backend/internal/query"
	"juggle-backend/internal/utilities"
)

// BusinessController handles business related endpoints
type BusinessController struct {
	controller.Deps
}

// NewBusinessController creates a new instance of BusinessController
func NewBusinessController(deps controller.Deps) *BusinessController {
	return &BusinessController{Deps: deps}
}

var businessFilters = query.FilterSet{
	Table: "businesses",
	Filters: []query.Filter{
		{Param: "company_name", Column: "company_name", Lookup: query.Contains},
		{Param: "website", Column: "website", Lookup: query.Exact},
		{Param: "min_created_datetime", Column: "created_at", Lookup: query.After},
		{Param: "max_created_datetime", Column: "created_at", Lookup: query.Before},
	},
}

// CreateBusinessHandler creates a business owned by the caller.
// @Summary Create business
// @Tags Business
// @Accept json
// @Produce json
// @Security Bearer
// @Param Business body model.BusinessInput true "Business information"
// @Success 201 {object} model.BusinessResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid business"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /business [post]
func (bc *BusinessController) CreateBusinessHandler(c *gin.Context) {
	user, ok := controller.Caller(c)
	if !ok {
		return
	}

	var in model.BusinessInput
	if !utilities.BindPayload(c, &in, false) {
		return
	}

	business := model.Business{OwnerID: user.ID}
	in.ApplyTo(&business)
	if err := bc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Create(&business).Error; err != nil {
		controller.DatabaseError(c, "create business", err)
		return
	}

	c.JSON(http.StatusCreated, business.ToResponse())
}

// ListBusinessesHandler lists the businesses owned by the caller.
// @Summary List own businesses
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Business
// @Produce json
// @Security Bearer
// @Param company_name query string false "Case-insensitive substring of the company name"
// @Param website query string false "Case-insensitive exact website"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.BusinessResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /business [get]
func (bc *BusinessController) ListBusinessesHandler(c *gin.Context) {
	user, ok := controller.Caller(c)
	if !ok {
		return
	}

	base := bc.DB.Model(&model.Business{}).Where("businesses.owner_id = ?", user.ID)
	controller.List(c, bc.Deps, base, businessFilters, toResponses)
}

// GetBusinessHandler returns one business.
// @Summary Get business
// @Tags Business
// @Produce json
// @Security Bearer
// @Param id path int true "Business id"
// @Success 200 {object} model.BusinessResponse
// @Failure 404 {object} utilities.ErrorResponse "Business not found"
// @Router /business/{id} [get]
func (bc *BusinessController) GetBusinessHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Business")
	if !ok {
		return
	}
	business, ok := controller.Load[model.Business](c, bc.DB.DB, id, "Business")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, business.ToResponse())
}

// UpdateBusinessHandler replaces (PUT) or patches (PATCH) a business of the caller.
// @Summary Update business
// @Description PUT requires every field, PATCH only the ones to change
// @Tags Business
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Business id"
// @Param Business body model.BusinessInput true "Business information"
// @Success 200 {object} model.BusinessResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid business"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Business not found"
// @Router /business/{id} [put]
// @Router /business/{id} [patch]
func (bc *BusinessController) UpdateBusinessHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Business")
	if !ok {
		return
	}
	business, ok := controller.Load[model.Business](c, bc.DB.DB, id, "Business")
	if !ok || !controller.RequireOwner(c, business.OwnerID) {
		return
	}

	var in model.BusinessInput
	if !utilities.BindPayload(c, &in, c.Request.Method == http.MethodPatch) {
		return
	}
	in.ApplyTo(&business)

	if err := bc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&business).Error; err != nil {
		controller.DatabaseError(c, "update business", err)
		return
	}
	c.JSON(http.StatusOK, business.ToResponse())
}

// ListJobsHandler lists the jobs of a business.
// @Summary List jobs of a business
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Business
// @Produce json
// @Security Bearer
// @Param id path int true "Business id"
// @Param title query string false "Case-insensitive exact title"
// @Param daily_rate_range query string false "Exact daily rate"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.JobResponse
// @Failure 404 {object} utilities.ErrorResponse "Business not found"
// @Router /business/{id}/jobs [get]
func (bc *BusinessController) ListJobsHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Business")
	if !ok {
		return
	}
	if _, ok := controller.Load[model.Business](c, bc.DB.DB, id, "Business"); !ok {
		return
	}

	base := bc.DB.Model(&model.Job{}).Where("jobs.business_id = ?", id)
	controller.List(c, bc.Deps, base, controller.JobFilters, bc.JobsConverter)
}

// CreateJobHandler posts a job for a business of the caller.
// @Summary Create job
// @Description The Location header points at the new job
// @Tags Business
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Business id"
// @Param Job body model.JobInput true "Job information"
// @Success 201 {object} model.JobResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid job"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Business not found"
// @Router /business/{id}/jobs [post]
func (bc *BusinessController) CreateJobHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Business")
	if !ok {
		return
	}
	business, ok := controller.Load[model.Business](c, bc.DB.DB, id, "Business")
	if !ok || !controller.RequireOwner(c, business.OwnerID) {
		return
	}

	var in model.JobInput
	if !utilities.BindPayload(c, &in, false) {
		return
	}

	job := model.Job{BusinessID: business.ID, OwnerID: business.OwnerID}
	in.ApplyTo(&job)
	if err := bc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Create(&job).Error; err != nil {
		controller.DatabaseError(c, "create job", err)
		return
	}

	c.Header("Location", bc.Query.AbsoluteURL(c.Request, fmt.Sprintf("/v1/jobs/%d", job.ID)))
	c.JSON(http.StatusCreated, job.ToResponse(bc.Catalogs))
}

func toResponses(_ context.Context, businesses []model.Business) ([]model.BusinessResponse, error) {
	out := make([]model.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		out = append(out, businesses[i].ToResponse())
	}
	return out, nil
}
