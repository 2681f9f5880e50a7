// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/trackbill/backend/internal/domain/entity"
	"github.com/trackbill/backend/internal/integration/entrypoint/controller"
	"github.com/trackbill/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	brandController     *controller.BrandController
	projectController   *controller.ProjectController
	taskController      *controller.TaskController
	timeEntryController *controller.TimeEntryController
	invoiceController   *controller.InvoiceController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	brandController *controller.BrandController,
	projectController *controller.ProjectController,
	taskController *controller.TaskController,
	timeEntryController *controller.TimeEntryController,
	invoiceController *controller.InvoiceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		brandController:     brandController,
		projectController:   projectController,
		taskController:      taskController,
		timeEntryController: timeEntryController,
		invoiceController:   invoiceController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Brand routes (admin only)
		if r.brandController != nil && r.authMiddleware != nil {
			brands := v1.Group("/brands")
			brands.Use(r.authMiddleware.Authenticate())
			brands.Use(r.authMiddleware.RequireRoles(entity.UserRoleAdmin))
			{
				brands.GET("", r.brandController.List)
				brands.POST("", r.brandController.Create)
				brands.PATCH("/:id", r.brandController.Update)
				brands.DELETE("/:id", r.brandController.Delete)
			}
		}

		// Project routes (require authentication; list is role-scoped,
		// mutations are admin only)
		if r.projectController != nil && r.authMiddleware != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.projectController.Create)
				projects.PATCH("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.projectController.Update)
				projects.DELETE("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.projectController.Delete)

				// Task listing is nested under the owning project
				if r.taskController != nil {
					projects.GET("/:id/tasks", r.taskController.List)
				}
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.POST("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.taskController.Create)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.taskController.Delete)
			}
		}

		// Time entry routes (admins and workers; scoping happens in the use cases)
		if r.timeEntryController != nil && r.authMiddleware != nil {
			timeEntries := v1.Group("/time-entries")
			timeEntries.Use(r.authMiddleware.Authenticate())
			timeEntries.Use(r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleWorker))
			{
				timeEntries.GET("", r.timeEntryController.List)
				timeEntries.GET("/groups", r.timeEntryController.Groups)
				timeEntries.POST("/summary", r.timeEntryController.Summary)
				timeEntries.POST("", r.timeEntryController.Create)
				timeEntries.PATCH("/:id", r.timeEntryController.Update)
				timeEntries.DELETE("/:id", r.timeEntryController.Delete)
			}
		}

		// Invoice routes (admins manage, clients may view their own brand's)
		if r.invoiceController != nil && r.authMiddleware != nil {
			invoices := v1.Group("/invoices")
			invoices.Use(r.authMiddleware.Authenticate())
			{
				invoices.GET("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleClient), r.invoiceController.List)
				invoices.GET("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleClient), r.invoiceController.Get)
				invoices.POST("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.invoiceController.Create)
				invoices.PATCH("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.invoiceController.Update)
				invoices.POST("/:id/send", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.invoiceController.Send)
				invoices.POST("/:id/payments", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.invoiceController.RecordPayment)
				invoices.POST("/:id/cancel", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.invoiceController.Cancel)
			}
		}
	}
}
