package http

import (
	"github.com/labstack/echo/v4"
)

// Routes bundles the handlers and the middleware chains they sit behind.
type Routes struct {
	Health      *Handler
	Catalog     *CatalogHandler
	Submissions *SubmissionHandler
	Reviews     *ReviewHandler
	Processes   *ProcessHandler
	Histories   *HistoryHandler

	// Auth guards every officer route; Idempotent is added on mutating ones.
	Auth       echo.MiddlewareFunc
	Idempotent echo.MiddlewareFunc
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

func (r Routes) Register(e *echo.Echo) {
	auth, idem := r.Auth, r.Idempotent
	if auth == nil {
		auth = passthrough
	}
	if idem == nil {
		idem = passthrough
	}

	e.GET("/health", r.Health.Health)
	e.GET("/documents/catalog", r.Catalog.Catalog)
	e.POST("/documents/phase", r.Catalog.DetectPhase)

	g := e.Group("", auth)

	g.POST("/submissions", r.Submissions.Submit, idem)
	g.GET("/submissions", r.Submissions.List)
	g.GET("/submissions/:user_id", r.Submissions.Get)
	g.POST("/submissions/:user_id/documents/:kind/file", r.Submissions.Attach, idem)
	g.GET("/submissions/:user_id/documents/:kind/url", r.Submissions.DocumentURL)
	g.PATCH("/submissions/:user_id/documents/:kind", r.Reviews.ReviewDocument, idem)
	g.PATCH("/submissions/:user_id/documents", r.Reviews.ReviewDocuments, idem)
	g.POST("/submissions/:user_id/evaluate", r.Reviews.Evaluate, idem)

	g.GET("/processes", r.Processes.List)
	g.POST("/processes/init", r.Processes.Init, idem)
	g.PUT("/processes/steps/:step", r.Processes.UpdateStepForMany, idem)
	g.GET("/processes/:user_id", r.Processes.Get)
	g.PUT("/processes/:user_id/steps/:step", r.Processes.UpdateStep, idem)

	g.GET("/students/:user_id/loan-history", r.Histories.Get)
}
