package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Site     SiteConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins string
	SeedSample   bool // boş veritabanına örnek ilan ve yazı ekler
}

type DatabaseConfig struct {
	URL string // postgres:// URL veya sqlite dosya yolu
}

type StorageConfig struct {
	Driver    string // local | s3
	LocalDir  string
	PublicURL string

	// S3 / R2
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	AdminUsername   string
	AdminPassword   string
	VisitorSecret   string
	SessionTTLHours int
}

type SiteConfig struct {
	ConfigPath  string // aktif site config dosyası veya http(s) URL
	ConfigDir   string // admin panelinden düzenlenen json dosyaları
	RefreshCron string // uzak kaynak için önbellek temizleme aralığı
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			AllowOrigins: getEnv("CORS_ORIGINS", "*"),
			SeedSample:   getEnvBool("SEED_SAMPLE_DATA", false),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "emlakweb.db"),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			LocalDir:      getEnv("UPLOAD_DIR", "./public/uploads"),
			PublicURL:     getEnv("UPLOAD_PUBLIC_URL", "/uploads"),
			Bucket:        getEnv("R2_BUCKET_NAME", ""),
			Region:        getEnv("S3_REGION", "auto"),
			Endpoint:      r2Endpoint(),
			AccessKey:     getEnv("R2_ACCESS_KEY", ""),
			SecretKey:     getEnv("R2_SECRET_KEY", ""),
			PublicBaseURL: getEnv("R2_PUBLIC_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			AdminUsername:   getEnv("ADMIN_USERNAME", ""),
			AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
			VisitorSecret:   getEnv("VISITOR_SECRET", "emlakweb-visitor-secret"),
			SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
		},
		Site: SiteConfig{
			ConfigPath:  getEnv("SITE_CONFIG_PATH", getEnv("NEXT_PUBLIC_CONFIG_PATH", "site.json")),
			ConfigDir:   getEnv("CONFIG_DIR", "./config"),
			RefreshCron: getEnv("CONFIG_REFRESH_INTERVAL", "@every 10m"),
		},
	}
}

// r2Endpoint S3_ENDPOINT yoksa R2 hesap ID'sinden endpoint üretir
func r2Endpoint() string {
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if accountID := os.Getenv("R2_ACCOUNT_ID"); accountID != "" {
		return "https://" + accountID + ".r2.cloudflarestorage.com"
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
