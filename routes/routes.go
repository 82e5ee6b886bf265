package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KENOx7/qayib/handlers"
	"github.com/KENOx7/qayib/middlewares"
	"github.com/KENOx7/qayib/session"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, store session.Store, ttl time.Duration) {
	auth := handlers.NewAuthHandler(store, ttl)
	std := handlers.NewStudentHandler()
	sub := handlers.NewSubjectHandler()
	abs := handlers.NewAbsenceHandler()
	adm := handlers.NewAdminHandler()
	rep := handlers.NewReportHandler()

	e.GET("/health", handlers.Health)

	api := e.Group("/api")

	// ===== Public =====
	api.POST("/login", auth.Login)
	api.POST("/logout", auth.Logout)
	api.GET("/students", std.List)
	api.GET("/subjects", sub.List)
	api.GET("/student/:id", std.Get)
	api.GET("/student/:id/details", std.Details)

	// ===== Admin (session gated) =====
	gate := middlewares.RequireAdmin(store)

	api.POST("/absence", abs.Create, gate)

	admin := api.Group("/admin", gate)
	admin.GET("/meta", adm.Meta)
	admin.GET("/counts", adm.Counts)
	admin.GET("/absences/:student_id/:subject_id", adm.AbsenceDetail)
	admin.POST("/absences", adm.CreateAbsence)
	admin.GET("/export", rep.Export)
}
