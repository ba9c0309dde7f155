// Package config provides centralized default values for artfolio
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Gallery Configuration
	GalleryPageSize   int
	FeaturedCount     int
	SimilarWorksCount int
	SliderAutoPlayMs  int
	DefaultLanguage   string

	// Session Configuration
	MaxSessions     int
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	// Database Configuration
	DBDriver           string
	DBPath             string
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	DBConnMaxLifetime  time.Duration
	SlowQueryThreshold time.Duration

	// Content Configuration
	CatalogSeedPath  string
	SliderConfigPath string
	LocalesPath      string

	// Media Configuration
	MediaPath       string
	ThumbnailWidths []int
	WebpQuality     float32

	// Auth Configuration
	JWTSecret         string
	AdminPasswordHash string
	TokenTTL          time.Duration

	// Email Configuration
	InquiryRecipient string
	CanonicalBaseURL string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Gallery Configuration
	GalleryPageSize = getEnvInt("GALLERY_PAGE_SIZE", 12)
	FeaturedCount = getEnvInt("FEATURED_COUNT", 6)
	SimilarWorksCount = getEnvInt("SIMILAR_WORKS_COUNT", 4)
	SliderAutoPlayMs = getEnvInt("SLIDER_AUTOPLAY_MS", 5000)
	DefaultLanguage = getEnvString("DEFAULT_LANGUAGE", "en")

	// Session Configuration
	MaxSessions = getEnvInt("MAX_SESSIONS", 5000)
	SessionTTL = time.Duration(getEnvInt("SESSION_TTL_HOURS", 4)) * time.Hour
	CleanupInterval = time.Duration(getEnvInt("SESSION_CLEANUP_INTERVAL_MINUTES", 15)) * time.Minute

	// Database Configuration
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBPath = getEnvString("DB_PATH", "artfolio.db")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour)
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 50*time.Millisecond)

	// Content Configuration
	CatalogSeedPath = getEnvString("CATALOG_SEED_PATH", "config/artworks.json")
	SliderConfigPath = getEnvString("SLIDER_CONFIG_PATH", "config/slider.json")
	LocalesPath = getEnvString("LOCALES_PATH", "config/locales")

	// Media Configuration
	MediaPath = getEnvString("MEDIA_PATH", "media")
	ThumbnailWidths = []int{getEnvInt("THUMB_WIDTH_SMALL", 400), getEnvInt("THUMB_WIDTH_LARGE", 800)}
	WebpQuality = float32(getEnvInt("WEBP_QUALITY", 80))

	// Auth Configuration
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	TokenTTL = time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour

	// Email Configuration
	InquiryRecipient = getEnvString("INQUIRY_RECIPIENT", "")
	CanonicalBaseURL = getEnvString("CANONICAL_BASE_URL", "http://localhost:8080")
}
