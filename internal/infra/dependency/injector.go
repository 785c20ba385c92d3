// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneykeeper/backend/config"
	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/application/usecase/auth"
	"github.com/moneykeeper/backend/internal/application/usecase/category"
	"github.com/moneykeeper/backend/internal/application/usecase/transaction"
	infradb "github.com/moneykeeper/backend/internal/infra/db"
	"github.com/moneykeeper/backend/internal/infra/server/router"
	"github.com/moneykeeper/backend/internal/integration/adapters"
	"github.com/moneykeeper/backend/internal/integration/email"
	"github.com/moneykeeper/backend/internal/integration/entrypoint/controller"
	"github.com/moneykeeper/backend/internal/integration/entrypoint/middleware"
	"github.com/moneykeeper/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil; login rate limiting is then disabled.
func NewInjector(cfg *config.Config, database *infradb.Database, redisClient *redis.Client) *Injector {
	db := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	suggester := adapters.NewGeminiService(cfg.Gemini.APIKey)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, emailSender)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Category use cases
	seedDefaultsUseCase := category.NewSeedDefaultsUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, seedDefaultsUseCase)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(categoryRepo, suggester)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, changePasswordUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, deleteCategoryUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		suggestCategoryUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		loginRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
