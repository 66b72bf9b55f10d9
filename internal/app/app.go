package app

import (
	"fmt"

	"parentcare_backend/internal/config"
	"parentcare_backend/internal/handlers"
	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/middleware"
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/routes"
	"parentcare_backend/internal/services"
	"parentcare_backend/internal/storage"
	"parentcare_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates the schema. The uuid extension backs the default primary
// key generation.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.ParentProfile{},
		&models.DaughterProfile{},
		&models.VendorProfile{},
		&models.ParentDaughterRelationship{},
		&models.ServiceAssignment{},
		&models.VendorRegistration{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Storage.BasePath)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	relRepo := repositories.NewRelationshipRepository(gormDB)
	assignmentRepo := repositories.NewAssignmentRepository(gormDB)
	leadRepo := repositories.NewVendorRegistrationRepository(gormDB)

	v := validator.New()

	uploadService := services.NewUploadService(
		storageInstance,
		cfg.Upload.MaxSize,
		cfg.Storage.VendorDir,
		cfg.Storage.BaseURL,
	)

	return &services.ServiceContainer{
		RegistrationService: services.NewRegistrationService(userRepo, uploadService, v),
		AuthService:         services.NewAuthService(userRepo),
		UserService:         services.NewUserService(userRepo),
		RelationshipService: services.NewRelationshipService(userRepo, relRepo),
		AssignmentService:   services.NewAssignmentService(userRepo, assignmentRepo),
		VendorLeadService:   services.NewVendorLeadService(leadRepo, v),
		UploadService:       uploadService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		RegistrationHandler: handlers.NewRegistrationHandler(base, sc.RegistrationService, sc.UploadService),
		AuthHandler:         handlers.NewAuthHandler(base, sc.AuthService),
		AdminHandler:        handlers.NewAdminHandler(base, sc.UserService),
		RelationshipHandler: handlers.NewRelationshipHandler(base, sc.RelationshipService),
		AssignmentHandler:   handlers.NewAssignmentHandler(base, sc.AssignmentService),
		VendorLeadHandler:   handlers.NewVendorLeadHandler(base, sc.VendorLeadService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
