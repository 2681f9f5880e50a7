// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/trackbill/backend/config"
	"github.com/trackbill/backend/internal/application/usecase/auth"
	"github.com/trackbill/backend/internal/application/usecase/brand"
	invoiceusecase "github.com/trackbill/backend/internal/application/usecase/invoice"
	"github.com/trackbill/backend/internal/application/usecase/project"
	"github.com/trackbill/backend/internal/application/usecase/task"
	"github.com/trackbill/backend/internal/application/usecase/timesheet"
	"github.com/trackbill/backend/internal/infra/server/router"
	"github.com/trackbill/backend/internal/integration/adapters"
	"github.com/trackbill/backend/internal/integration/email"
	"github.com/trackbill/backend/internal/integration/email/templates"
	"github.com/trackbill/backend/internal/integration/entrypoint/controller"
	"github.com/trackbill/backend/internal/integration/entrypoint/middleware"
	"github.com/trackbill/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	brandRepo := persistence.NewBrandRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	timeEntryRepo := persistence.NewTimeEntryRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create email pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create brand use cases
	createBrandUseCase := brand.NewCreateBrandUseCase(brandRepo)
	updateBrandUseCase := brand.NewUpdateBrandUseCase(brandRepo)
	deleteBrandUseCase := brand.NewDeleteBrandUseCase(brandRepo)
	listBrandsUseCase := brand.NewListBrandsUseCase(brandRepo)

	// Create project use cases
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo, brandRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)

	// Create task use cases
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, projectRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)
	listTasksUseCase := task.NewListTasksUseCase(taskRepo, projectRepo)

	// Create timesheet use cases
	createEntryUseCase := timesheet.NewCreateEntryUseCase(timeEntryRepo, projectRepo, taskRepo, brandRepo)
	updateEntryUseCase := timesheet.NewUpdateEntryUseCase(timeEntryRepo)
	deleteEntryUseCase := timesheet.NewDeleteEntryUseCase(timeEntryRepo)
	listEntriesUseCase := timesheet.NewListEntriesUseCase(timeEntryRepo)
	groupEntriesUseCase := timesheet.NewGroupEntriesUseCase(timeEntryRepo, projectRepo, taskRepo, userRepo)
	getSummaryUseCase := timesheet.NewGetSummaryUseCase(timeEntryRepo)

	// Create invoice use cases
	createInvoiceUseCase := invoiceusecase.NewCreateInvoiceUseCase(invoiceRepo, brandRepo)
	updateInvoiceUseCase := invoiceusecase.NewUpdateInvoiceUseCase(invoiceRepo)
	listInvoicesUseCase := invoiceusecase.NewListInvoicesUseCase(invoiceRepo)
	getInvoiceUseCase := invoiceusecase.NewGetInvoiceUseCase(invoiceRepo)
	sendInvoiceUseCase := invoiceusecase.NewSendInvoiceUseCase(invoiceRepo, brandRepo, emailQueueRepo)
	recordPaymentUseCase := invoiceusecase.NewRecordPaymentUseCase(invoiceRepo, brandRepo, emailQueueRepo)
	cancelInvoiceUseCase := invoiceusecase.NewCancelInvoiceUseCase(invoiceRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	brandController := controller.NewBrandController(
		createBrandUseCase,
		updateBrandUseCase,
		deleteBrandUseCase,
		listBrandsUseCase,
	)

	projectController := controller.NewProjectController(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		listProjectsUseCase,
		userRepo,
	)

	taskController := controller.NewTaskController(
		createTaskUseCase,
		updateTaskUseCase,
		deleteTaskUseCase,
		listTasksUseCase,
	)

	timeEntryController := controller.NewTimeEntryController(
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		listEntriesUseCase,
		groupEntriesUseCase,
		getSummaryUseCase,
		userRepo,
	)

	invoiceController := controller.NewInvoiceController(
		createInvoiceUseCase,
		updateInvoiceUseCase,
		listInvoicesUseCase,
		getInvoiceUseCase,
		sendInvoiceUseCase,
		recordPaymentUseCase,
		cancelInvoiceUseCase,
		userRepo,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		brandController,
		projectController,
		taskController,
		timeEntryController,
		invoiceController,
		loginRateLimiter,
		authMiddleware,
	)

	slog.Info("Dependency graph wired")

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
