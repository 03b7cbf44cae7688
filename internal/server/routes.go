// Package server wires the gin engine: middleware, controllers and their routes.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"juggle-backend/internal/assignment"
	"juggle-backend/internal/auth"
	"juggle-backend/internal/catalog"
	"juggle-backend/internal/controller"
	"juggle-backend/internal/controller/business"
	"juggle-backend/internal/controller/job"
	"juggle-backend/internal/controller/professional"
	"juggle-backend/internal/middleware"
	"juggle-backend/internal/query"

	// Init swagger doc
	_ "juggle-backend/docs"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.HTTP.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{query.TotalCountHeader, query.LinkHeader, "Location", "Retry-After"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader(), middleware.SizeLimit(s.cfg.HTTP.MaxBodyBytes))

	deps := controller.NewDeps(
		s.db,
		query.NewEngine(s.cfg.Paging.PageSize, s.cfg.Paging.MaxPageSize, s.cfg.HTTP.SiteBaseURL),
		catalog.Default(),
	)
	assigner := assignment.NewAssigner(assignment.NewGormStore(s.db.DB), s.cfg.ApplicationDailyLimit)

	lAuth := auth.NewLocalAuthHandler(s.db, s.tokens)
	logout := auth.NewLogoutController(s.blacklist)
	bc := business.NewBusinessController(deps)
	jc := job.NewJobController(deps)
	pc := professional.NewProfessionalController(deps, assigner)

	limiter := middleware.RateLimiterMiddleware(s.cfg.HTTP.RateLimitPerSecond)

	r.GET("/health", s.healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		public := v1.Group("", limiter)
		{
			public.POST("/users", lAuth.RegisterHandler)
			public.POST("/token", lAuth.LoginHandler)
			public.POST("/token/refresh", lAuth.RefreshHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.db, s.tokens, s.blacklist), limiter)
			needAuth.POST("/token/logout", logout.LogoutHandler)

			businessRoute := needAuth.Group("/business")
			{
				businessRoute.GET("", bc.ListBusinessesHandler)
				businessRoute.POST("", bc.CreateBusinessHandler)
				businessRoute.GET("/:id", bc.GetBusinessHandler)
				businessRoute.PUT("/:id", bc.UpdateBusinessHandler)
				businessRoute.PATCH("/:id", bc.UpdateBusinessHandler)
				businessRoute.GET("/:id/jobs", bc.ListJobsHandler)
				businessRoute.POST("/:id/jobs", bc.CreateJobHandler)
			}

			jobRoute := needAuth.Group("/jobs")
			{
				jobRoute.GET("", jc.ListJobsHandler)
				jobRoute.GET("/:id", jc.GetJobHandler)
				jobRoute.PUT("/:id", jc.UpdateJobHandler)
				jobRoute.PATCH("/:id", jc.UpdateJobHandler)
				jobRoute.GET("/:id/professionals", jc.ListProfessionalsHandler)
			}

			professionalRoute := needAuth.Group("/professionals")
			{
				professionalRoute.GET("", pc.ListProfessionalsHandler)
				professionalRoute.POST("", pc.CreateProfessionalHandler)
				professionalRoute.GET("/:id", pc.GetProfessionalHandler)
				professionalRoute.PUT("/:id", pc.UpdateProfessionalHandler)
				professionalRoute.PATCH("/:id", pc.UpdateProfessionalHandler)
				professionalRoute.DELETE("/:id", pc.DeleteProfessionalHandler)
				professionalRoute.GET("/:id/jobs", pc.ListJobsHandler)
				professionalRoute.PUT("/:id/job-apply/:job_id", pc.ApplyHandler)
			}
		}
	}

	return r
}

// healthHandler reports database health, answering 503 when the database is down.
func (s *Server) healthHandler(c *gin.Context) {
	stats := s.db.Health(c.Request.Context())
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
