package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Taste    TasteConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// TasteConfig carries the tunables of the taste engine: the total taste
// count, the selector cutoff constants, the hard-filter thresholds and the
// builder batch settings.
type TasteConfig struct {
	TasteCount int

	SelectorDiffFactor    float64 // threshold = max(DiffFactor*avg_diff, MaxShare*max_score)
	SelectorMaxShare      float64
	SelectorFallbackShare float64 // fallback keeps scores >= FallbackShare * top-3 average

	StudioMaxDepthMM    int
	SingleMaxCapacityKG int

	BuilderConcurrency int
	TopProductsPerCat  int
	CacheTTLSeconds    int
	Revalidate         bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Appliance Taste API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "appliance_taste"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Taste: TasteConfig{
			TasteCount:            getEnvInt("TASTE_COUNT", 1920),
			SelectorDiffFactor:    getEnvFloat("SELECTOR_DIFF_FACTOR", 2.0),
			SelectorMaxShare:      getEnvFloat("SELECTOR_MAX_SHARE", 0.2),
			SelectorFallbackShare: getEnvFloat("SELECTOR_FALLBACK_SHARE", 0.3),
			StudioMaxDepthMM:      getEnvInt("STUDIO_MAX_DEPTH_MM", 750),
			SingleMaxCapacityKG:   getEnvInt("SINGLE_MAX_CAPACITY_KG", 24),
			BuilderConcurrency:    getEnvInt("BUILDER_CONCURRENCY", 4),
			TopProductsPerCat:     getEnvInt("TOP_PRODUCTS_PER_CATEGORY", 3),
			CacheTTLSeconds:       getEnvInt("TASTE_CONFIG_CACHE_TTL", 600),
			Revalidate:            getEnvBool("RECOMMEND_REVALIDATE", true),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}

	return defaultVal
}
