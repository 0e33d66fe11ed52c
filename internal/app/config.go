package app

import (
	"strings"
	"time"

	"github.com/yungbote/coursekey/internal/data/db"
	"github.com/yungbote/coursekey/internal/observability"
	"github.com/yungbote/coursekey/internal/platform/envutil"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type Config struct {
	Port        string
	CORSOrigins []string

	DB db.Config

	RedisAddr        string
	CourseCodeTTL    time.Duration
	CourseCodeLRU    int
	BatchConcurrency int

	Otel observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		CORSOrigins: splitList(envutil.String("CORS_ORIGINS", "")),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "coursekey"),
			SQLitePath:       envutil.String("SQLITE_PATH", ""),
		},
		RedisAddr:        envutil.String("REDIS_ADDR", ""),
		CourseCodeTTL:    envutil.Seconds("COURSE_CODE_CACHE_TTL", 24*time.Hour),
		CourseCodeLRU:    envutil.Int("COURSE_CODE_CACHE_SIZE", 4096),
		BatchConcurrency: envutil.Int("ID_BATCH_CONCURRENCY", 8),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "coursekey"),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development"),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: float64(envutil.Int("OTEL_SAMPLE_PERCENT", 100)) / 100,
		},
	}
	if cfg.BatchConcurrency <= 0 {
		log.Warn("ID_BATCH_CONCURRENCY must be positive, using default", "value", cfg.BatchConcurrency)
		cfg.BatchConcurrency = 8
	}
	log.Info("config loaded",
		"port", cfg.Port,
		"db_driver", cfg.DB.Driver,
		"redis", cfg.RedisAddr != "",
		"otel", cfg.Otel.Enabled,
	)
	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
