package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"course_leads_backend/handlers"
	"course_leads_backend/store"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, s store.Store, db handlers.Pinger, gatherer prometheus.Gatherer) {
	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(s)
	leadHandler := handlers.NewLeadHandler(s)
	commentHandler := handlers.NewCommentHandler(s)
	healthHandler := handlers.NewHealthHandler(db)

	// Course routes
	r.POST("/courses", courseHandler.CreateCourse)
	r.PUT("/courses/:id", courseHandler.UpdateCourse)

	// Lead routes
	r.POST("/courses/:courseId/leads", leadHandler.RegisterLead)
	r.PUT("/leads/:id", leadHandler.UpdateLeadStatus)
	r.GET("/leads", leadHandler.SearchLeads)

	// Comment routes
	r.POST("/leads/:leadId/comments", commentHandler.AddComment)

	// Operational routes
	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
