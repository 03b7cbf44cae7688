// Package job provides HTTP handlers for jobs and the professionals who applied to them.
package job

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"juggle-backend/internal/controller"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

// JobController handles job related endpoints
type JobController struct {
	controller.Deps
}

// NewJobController creates a new instance of JobController
func NewJobController(deps controller.Deps) *JobController {
	return &JobController{Deps: deps}
}

// ListJobsHandler lists every job.
// @Summary List jobs
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Job
// @Produce json
// @Security Bearer
// @Param title query string false "Case-insensitive exact title"
// @Param daily_rate_range query string false "Exact daily rate"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.JobResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /jobs [get]
func (jc *JobController) ListJobsHandler(c *gin.Context) {
	controller.List(c, jc.Deps, jc.DB.Model(&model.Job{}), controller.JobFilters, jc.JobsConverter)
}

// GetJobHandler returns one job.
// @Summary Get job
// @Tags Job
// @Produce json
// @Security Bearer
// @Param id path int true "Job id"
// @Success 200 {object} model.JobResponse
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Job")
	if !ok {
		return
	}
	job, ok := controller.Load[model.Job](c, jc.DB.DB, id, "Job")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, job.ToResponse(jc.Catalogs))
}

// UpdateJobHandler replaces (PUT) or patches (PATCH) a job of the caller.
// @Summary Update job
// @Description PUT requires every field, PATCH only the ones to change
// @Tags Job
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Job id"
// @Param Job body model.JobInput true "Job information"
// @Success 200 {object} model.JobResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid job"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
// @Router /jobs/{id} [patch]
func (jc *JobController) UpdateJobHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Job")
	if !ok {
		return
	}
	job, ok := controller.Load[model.Job](c, jc.DB.DB, id, "Job")
	if !ok || !controller.RequireOwner(c, job.OwnerID) {
		return
	}

	var in model.JobInput
	if !utilities.BindPayload(c, &in, c.Request.Method == http.MethodPatch) {
		return
	}
	in.ApplyTo(&job)

	if err := jc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&job).Error; err != nil {
		controller.DatabaseError(c, "update job", err)
		return
	}
	c.JSON(http.StatusOK, job.ToResponse(jc.Catalogs))
}

// ListProfessionalsHandler lists the professionals who applied to a job, each once.
// @Summary List applicants of a job
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Job
// @Produce json
// @Security Bearer
// @Param id path int true "Job id"
// @Param title query string false "Case-insensitive substring of the title"
// @Param email query string false "Case-insensitive exact email"
// @Param full_name query string false "Case-insensitive substring of the full name"
// @Param daily_rate_range query string false "Exact daily rate"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.ProfessionalResponse
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/professionals [get]
func (jc *JobController) ListProfessionalsHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Job")
	if !ok {
		return
	}
	if _, ok := controller.Load[model.Job](c, jc.DB.DB, id, "Job"); !ok {
		return
	}

	applicants := jc.DB.Model(&model.Application{}).Select("professional_id").Where("job_id = ?", id)
	base := jc.DB.Model(&model.Professional{}).Where("professionals.id IN (?)", applicants)
	controller.List(c, jc.Deps, base, controller.ProfessionalFilters, jc.ProfessionalsConverter)
}
