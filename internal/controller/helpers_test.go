package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/internal/model"
	"emlakweb_backend/internal/repository"
	"emlakweb_backend/pkg/consent"
	"emlakweb_backend/pkg/mailto"
	"emlakweb_backend/pkg/siteconfig"
	"emlakweb_backend/pkg/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	auth      *repository.AuthRepository
	consent   *consent.Manager
	store     *storage.LocalStorage
	configDir string
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:controller_test_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Listing{},
		&model.BlogPost{},
		&model.AdminUser{},
		&model.Session{},
		&model.ViewTracking{},
		&model.PageView{},
	))

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	configDir := t.TempDir()
	loader := siteconfig.NewLoader("site.json", configDir)

	generator, err := mailto.NewGenerator()
	require.NoError(t, err)

	views := repository.NewViewTracker(db)
	authRepo := repository.NewAuthRepository(db, 0)
	consentManager := consent.NewManager(nil)

	InitAuthController(authRepo)
	InitListingController(repository.NewListingRepository(db, store, views))
	InitBlogController(repository.NewBlogRepository(db, store, views))
	InitUploadController(store)
	InitConfigController(loader, siteconfig.NewManager(configDir, loader))
	InitConsentController(consentManager)
	InitContactController(generator)
	InitStatsController(repository.NewStatsRepository(db))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(middleware.I18n())
	app.Use(middleware.Visitor())

	api := app.Group("/api")
	api.Post("/auth/login", Login)
	api.Post("/auth/logout", Logout)
	api.Get("/auth/verify", middleware.RequireAdmin(authRepo), Verify)

	api.Get("/listings", ListListings)
	api.Get("/listings/:id", GetListing)
	api.Get("/blog", ListPosts)
	api.Get("/blog/:slug", GetPostBySlug)
	api.Get("/site-config", GetSiteConfig)

	api.Get("/consent", GetConsent)
	api.Post("/consent", SaveConsent)
	api.Get("/consent/export", ExportConsentData)
	api.Delete("/consent/data", DeleteConsentData)

	api.Post("/contact/mailto", ContactMailto)
	api.Post("/careers/mailto", CareersMailto)
	api.Post("/pageviews", middleware.RequireConsent(consentManager, middleware.CategoryAnalytics), RecordPageView)

	admin := api.Group("/admin", middleware.RequireAdmin(authRepo))
	admin.Get("/listings", AdminListListings)
	admin.Get("/listings/:id", AdminGetListing)
	admin.Post("/listings", CreateListing)
	admin.Put("/listings/:id", UpdateListing)
	admin.Delete("/listings/:id", DeleteListing)
	admin.Get("/blog", AdminListPosts)
	admin.Get("/blog/:id", AdminGetPost)
	admin.Post("/blog", CreatePost)
	admin.Put("/blog/:id", UpdatePost)
	admin.Delete("/blog/:id", DeletePost)
	admin.Post("/upload", UploadImage)
	admin.Delete("/upload", DeleteImage)
	admin.Get("/configs", ListConfigs)
	admin.Post("/configs/upload", UploadConfig)
	admin.Post("/configs/format", FormatConfig)
	admin.Get("/configs/:name", GetConfig)
	admin.Put("/configs/:name", SaveConfig)
	admin.Post("/configs/:name/rename", RenameConfig)
	admin.Delete("/configs/:name", DeleteConfig)
	admin.Get("/stats", GetDashboardStats)

	return &testEnv{
		app:       app,
		db:        db,
		auth:      authRepo,
		consent:   consentManager,
		store:     store,
		configDir: configDir,
	}
}

// adminToken test admini oluşturup oturum açar
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	_, err := e.auth.EnsureAdmin(context.Background(), "admin", "gizli-sifre")
	require.NoError(t, err)
	session, err := e.auth.Login(context.Background(), "admin", "gizli-sifre")
	require.NoError(t, err)
	return session.Token
}

func newJSONRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func withToken(req *http.Request, token string) *http.Request {
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest), string(env.Data))
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
