package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"

	"emlakweb_backend/internal/controller"
	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/internal/model"
	"emlakweb_backend/internal/repository"
	"emlakweb_backend/pkg/config"
	"emlakweb_backend/pkg/consent"
	"emlakweb_backend/pkg/cron"
	"emlakweb_backend/pkg/database"
	"emlakweb_backend/pkg/mailto"
	"emlakweb_backend/pkg/seed"
	"emlakweb_backend/pkg/siteconfig"
	"emlakweb_backend/pkg/utils/jwt"
	"emlakweb_backend/pkg/utils/storage"
)

const bodyLimit = 12 * 1024 * 1024

func setupRoutes(app *fiber.App, auth *repository.AuthRepository, consentManager *consent.Manager) {
	api := app.Group("/api")

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", controller.Login)
	authGroup.Post("/logout", controller.Logout)
	authGroup.Get("/verify", middleware.RequireAdmin(auth), controller.Verify)

	// Public Routes
	api.Get("/listings", controller.ListListings)
	api.Get("/listings/:id", controller.GetListing)
	api.Get("/blog", controller.ListPosts)
	api.Get("/blog/:slug", controller.GetPostBySlug)
	api.Get("/site-config", controller.GetSiteConfig)

	// Cookie consent
	consentGroup := api.Group("/consent")
	consentGroup.Get("/", controller.GetConsent)
	consentGroup.Post("/", controller.SaveConsent)
	consentGroup.Get("/export", controller.ExportConsentData)
	consentGroup.Delete("/data", controller.DeleteConsentData)

	// Mailto
	api.Post("/contact/mailto", controller.ContactMailto)
	api.Post("/careers/mailto", controller.CareersMailto)

	// Analitik onayı olmadan kayıt yapılmaz
	api.Post("/pageviews", middleware.RequireConsent(consentManager, middleware.CategoryAnalytics), controller.RecordPageView)

	// Admin Routes
	admin := api.Group("/admin", middleware.RequireAdmin(auth))

	listings := admin.Group("/listings")
	listings.Get("/", controller.AdminListListings)
	listings.Get("/:id", controller.AdminGetListing)
	listings.Post("/", controller.CreateListing)
	listings.Put("/:id", controller.UpdateListing)
	listings.Delete("/:id", controller.DeleteListing)

	blog := admin.Group("/blog")
	blog.Get("/", controller.AdminListPosts)
	blog.Get("/:id", controller.AdminGetPost)
	blog.Post("/", controller.CreatePost)
	blog.Put("/:id", controller.UpdatePost)
	blog.Delete("/:id", controller.DeletePost)

	admin.Post("/upload", controller.UploadImage)
	admin.Delete("/upload", controller.DeleteImage)

	configs := admin.Group("/configs")
	configs.Get("/", controller.ListConfigs)
	configs.Post("/upload", controller.UploadConfig)
	configs.Post("/format", controller.FormatConfig)
	configs.Get("/:name", controller.GetConfig)
	configs.Put("/:name", controller.SaveConfig)
	configs.Post("/:name/rename", controller.RenameConfig)
	configs.Delete("/:name", controller.DeleteConfig)

	admin.Get("/stats", controller.GetDashboardStats)
}

func initStorage(ctx context.Context, app *fiber.App, cfg config.StorageConfig) storage.Storage {
	if cfg.Driver == "s3" || cfg.Driver == "r2" {
		store, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:        cfg.Bucket,
			Region:        cfg.Region,
			Endpoint:      cfg.Endpoint,
			AccessKey:     cfg.AccessKey,
			SecretKey:     cfg.SecretKey,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("Could not initialize S3 storage:", err)
		}
		log.Printf("Using S3 storage bucket %s", cfg.Bucket)
		return store
	}

	store, err := storage.NewLocalStorage(cfg.LocalDir, cfg.PublicURL)
	if err != nil {
		log.Fatal("Could not initialize local storage:", err)
	}
	app.Static(cfg.PublicURL, store.BaseDir())
	log.Printf("Using local storage at %s", store.BaseDir())
	return store
}

// initAuditLog Redis tanımlıysa onay olaylarını Redis'te, değilse bellekte tutar
func initAuditLog(ctx context.Context, cfg config.RedisConfig) consent.AuditLog {
	if cfg.Addr == "" {
		return consent.NewMemoryLog(consent.MaxLogEntries)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, falling back to in-memory consent log: %v", err)
		client.Close()
		return consent.NewMemoryLog(consent.MaxLogEntries)
	}

	log.Printf("Consent audit log stored in Redis at %s", cfg.Addr)
	return consent.NewRedisLog(client, consent.MaxLogEntries)
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	jwt.SetSecret(cfg.Auth.VisitorSecret)

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.Listing{},
		&model.BlogPost{},
		&model.AdminUser{},
		&model.Session{},
		&model.ViewTracking{},
		&model.PageView{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}
	db := database.GetDB()

	app := fiber.New(fiber.Config{
		ErrorHandler: controller.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowCredentials: cfg.Server.AllowOrigins != "*",
	}))
	app.Use(middleware.I18n())
	app.Use(middleware.Visitor())

	store := initStorage(ctx, app, cfg.Storage)

	views := repository.NewViewTracker(db)
	authRepo := repository.NewAuthRepository(db, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)

	seed.SeedAdmin(ctx, authRepo, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if cfg.Server.SeedSample {
		seed.SeedSampleContent(db)
	}

	loader := siteconfig.NewLoader(cfg.Site.ConfigPath, cfg.Site.ConfigDir)
	generator, err := mailto.NewGenerator()
	if err != nil {
		log.Fatal("Could not initialize mailto generator:", err)
	}

	consentManager := consent.NewManager(initAuditLog(ctx, cfg.Redis))
	consentManager.Subscribe(func(visitorID string, prefs consent.Preferences) {
		log.Printf("Consent updated for %s: functional=%t analytics=%t marketing=%t",
			visitorID, prefs.Functional, prefs.Analytics, prefs.Marketing)
	})

	controller.InitAuthController(authRepo)
	controller.InitListingController(repository.NewListingRepository(db, store, views))
	controller.InitBlogController(repository.NewBlogRepository(db, store, views))
	controller.InitUploadController(store)
	controller.InitConfigController(loader, siteconfig.NewManager(cfg.Site.ConfigDir, loader))
	controller.InitConsentController(consentManager)
	controller.InitContactController(generator)
	controller.InitStatsController(repository.NewStatsRepository(db))

	cleanup := cron.InitCleanupCron(views, authRepo)
	if cleanup != nil {
		defer cleanup.Stop()
	}
	if loader.IsRemote() {
		if refresh := cron.InitConfigRefreshCron(loader, cfg.Site.RefreshCron); refresh != nil {
			defer refresh.Stop()
		}
	}

	setupRoutes(app, authRepo, consentManager)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
