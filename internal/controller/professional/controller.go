// Package professional provides HTTP handlers for professionals and their job applications.
package professional

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"juggle-backend/internal/assignment"
	"juggle-backend/internal/controller"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

// ProfessionalController handles professional related endpoints
type ProfessionalController struct {
	controller.Deps
	Assigner *assignment.Assigner
}

// NewProfessionalController creates a new instance of ProfessionalController
func NewProfessionalController(deps controller.Deps, assigner *assignment.Assigner) *ProfessionalController {
	return &ProfessionalController{Deps: deps, Assigner: assigner}
}

// ListProfessionalsHandler lists every professional.
// @Summary List professionals
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Professional
// @Produce json
// @Security Bearer
// @Param title query string false "Case-insensitive substring of the title"
// @Param email query string false "Case-insensitive exact email"
// @Param full_name query string false "Case-insensitive substring of the full name"
// @Param daily_rate_range query string false "Exact daily rate"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.ProfessionalResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /professionals [get]
func (pc *ProfessionalController) ListProfessionalsHandler(c *gin.Context) {
	controller.List(c, pc.Deps, pc.DB.Model(&model.Professional{}), controller.ProfessionalFilters, pc.ProfessionalsConverter)
}

// CreateProfessionalHandler creates a professional owned by the caller.
// @Summary Create professional
// @Tags Professional
// @Accept json
// @Produce json
// @Security Bearer
// @Param Professional body model.ProfessionalInput true "Professional information"
// @Success 201 {object} model.ProfessionalResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid professional"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /professionals [post]
func (pc *ProfessionalController) CreateProfessionalHandler(c *gin.Context) {
	user, ok := controller.Caller(c)
	if !ok {
		return
	}

	var in model.ProfessionalInput
	if !utilities.BindPayload(c, &in, false) {
		return
	}

	professional := model.Professional{OwnerID: user.ID}
	in.ApplyTo(&professional)
	if err := pc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Create(&professional).Error; err != nil {
		controller.DatabaseError(c, "create professional", err)
		return
	}

	c.JSON(http.StatusCreated, professional.ToResponse(pc.Catalogs, nil))
}

// GetProfessionalHandler returns one professional with the jobs they applied to.
// @Summary Get professional
// @Tags Professional
// @Produce json
// @Security Bearer
// @Param id path int true "Professional id"
// @Success 200 {object} model.ProfessionalResponse
// @Failure 404 {object} utilities.ErrorResponse "Professional not found"
// @Router /professionals/{id} [get]
func (pc *ProfessionalController) GetProfessionalHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Professional")
	if !ok {
		return
	}
	professional, ok := controller.Load[model.Professional](c, pc.DB.DB, id, "Professional")
	if !ok {
		return
	}
	pc.respond(c, http.StatusOK, professional)
}

// UpdateProfessionalHandler replaces (PUT) or patches (PATCH) a professional of the caller.
// @Summary Update professional
// @Description PUT requires every field, PATCH only the ones to change
// @Tags Professional
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Professional id"
// @Param Professional body model.ProfessionalInput true "Professional information"
// @Success 200 {object} model.ProfessionalResponse
// @Failure 400 {object} utilities.FieldErrors "Invalid professional"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Professional not found"
// @Router /professionals/{id} [put]
// @Router /professionals/{id} [patch]
func (pc *ProfessionalController) UpdateProfessionalHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Professional")
	if !ok {
		return
	}
	professional, ok := controller.Load[model.Professional](c, pc.DB.DB, id, "Professional")
	if !ok || !controller.RequireOwner(c, professional.OwnerID) {
		return
	}

	var in model.ProfessionalInput
	if !utilities.BindPayload(c, &in, c.Request.Method == http.MethodPatch) {
		return
	}
	in.ApplyTo(&professional)

	if err := pc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&professional).Error; err != nil {
		controller.DatabaseError(c, "update professional", err)
		return
	}
	pc.respond(c, http.StatusOK, professional)
}

// DeleteProfessionalHandler deletes a professional of the caller together with their applications.
// @Summary Delete professional
// @Tags Professional
// @Security Bearer
// @Param id path int true "Professional id"
// @Success 204
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Professional not found"
// @Router /professionals/{id} [delete]
func (pc *ProfessionalController) DeleteProfessionalHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Professional")
	if !ok {
		return
	}
	professional, ok := controller.Load[model.Professional](c, pc.DB.DB, id, "Professional")
	if !ok || !controller.RequireOwner(c, professional.OwnerID) {
		return
	}

	if err := pc.DB.WithContext(c.Request.Context()).Delete(&professional).Error; err != nil {
		controller.DatabaseError(c, "delete professional", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListJobsHandler lists the jobs a professional applied to, each once.
// @Summary List jobs a professional applied to
// @Description Ordered by id. Paginated with page and page_size, total in X-Total-Count, navigation in Link.
// @Tags Professional
// @Produce json
// @Security Bearer
// @Param id path int true "Professional id"
// @Param title query string false "Case-insensitive exact title"
// @Param daily_rate_range query string false "Exact daily rate"
// @Param min_created_datetime query string false "Created at or after"
// @Param max_created_datetime query string false "Created at or before"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} model.JobResponse
// @Failure 404 {object} utilities.ErrorResponse "Professional not found"
// @Router /professionals/{id}/jobs [get]
func (pc *ProfessionalController) ListJobsHandler(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "Professional")
	if !ok {
		return
	}
	if _, ok := controller.Load[model.Professional](c, pc.DB.DB, id, "Professional"); !ok {
		return
	}

	applied := pc.DB.Model(&model.Application{}).Select("job_id").Where("professional_id = ?", id)
	base := pc.DB.Model(&model.Job{}).Where("jobs.id IN (?)", applied)
	controller.List(c, pc.Deps, base, controller.JobFilters, pc.JobsConverter)
}

// ApplyHandler applies a professional to a job. A job accepts a limited number of applications
// per UTC day; past it the request fails with a single-message list.
// @Summary Apply to a job
// @Tags Professional
// @Produce json
// @Security Bearer
// @Param id path int true "Professional id"
// @Param job_id path int true "Job id"
// @Success 200 "Applied"
// @Failure 400 {array} string "Daily application limit reached"
// @Failure 404 {object} utilities.ErrorResponse "Professional or job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /professionals/{id}/job-apply/{job_id} [put]
func (pc *ProfessionalController) ApplyHandler(c *gin.Context) {
	professionalID, ok := controller.ParseID(c, "id", "Professional")
	if !ok {
		return
	}
	jobID, ok := controller.ParseID(c, "job_id", "Job")
	if !ok {
		return
	}

	_, err := pc.Assigner.Apply(c.Request.Context(), professionalID, jobID)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, assignment.ErrApplicationLimitReached):
		c.JSON(http.StatusBadRequest, []string{assignment.LimitReachedMessage})
	case errors.Is(err, assignment.ErrJobNotFound):
		controller.NotFound(c, "Job")
	case errors.Is(err, assignment.ErrProfessionalNotFound):
		controller.NotFound(c, "Professional")
	default:
		controller.DatabaseError(c, "apply to job", err)
	}
}

func (pc *ProfessionalController) respond(c *gin.Context, status int, professional model.Professional) {
	jobs, err := controller.AppliedJobs(c.Request.Context(), pc.DB.DB, professional.ID)
	if err != nil {
		controller.DatabaseError(c, "retrieve applied jobs", err)
		return
	}
	c.JSON(status, professional.ToResponse(pc.Catalogs, jobs[professional.ID]))
}
