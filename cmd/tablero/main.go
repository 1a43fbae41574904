package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/davicafu/tablero/internal/config"
	"github.com/davicafu/tablero/internal/content"
	"github.com/davicafu/tablero/internal/content/media"
	"github.com/davicafu/tablero/internal/content/news"
	"github.com/davicafu/tablero/internal/content/polls"
	"github.com/davicafu/tablero/internal/content/settings"
	"github.com/davicafu/tablero/internal/platform/cache"
	"github.com/davicafu/tablero/internal/store"
	"github.com/davicafu/tablero/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ---------------- Main ----------------
func main() {
	_ = godotenv.Load() // .env opcional

	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ---------------- DB ----------------
	var (
		db      *sql.DB
		dialect store.Dialect
		err     error
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = sql.Open("pgx", cfg.PostgresDSN)
		dialect = store.Postgres
	default:
		db, err = sql.Open("sqlite", cfg.SQLitePath)
		dialect = store.SQLite
	}
	if err != nil {
		log.Fatal("failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer db.Close()

	// Arranque: reintenta el ping antes de rendirse. El store asume un pool
	// ya sano; los reintentos viven solo aquí.
	if err := pingWithRetry(ctx, db, 5, 2*time.Second); err != nil {
		log.Fatal("database unreachable", zap.Error(err))
	}

	if cfg.DBDriver != "postgres" {
		if err := content.InitSQLite(db); err != nil {
			log.Fatal("failed to initialize schema", zap.Error(err))
		}
	}

	st := store.New(db, dialect, log)

	// ---------------- Cache ----------------
	var cacheInstance cache.Cache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
		cacheInstance = cache.NewMemoryCache(cfg.CacheTTL)
	} else {
		cacheInstance = cache.NewRedisCache(rdb, cfg.CacheTTL)
		log.Info("redis connected, cache enabled")
	}

	// ---------------- Servicios ----------------
	pollsService := polls.NewService(st, log)
	newsService := news.NewService(st, log)
	mediaService := media.NewService(st, log)
	settingsService := settings.NewService(st, cacheInstance, log)

	// ---------------- HTTP ----------------
	r := gin.Default()
	polls.RegisterRoutes(r, polls.NewHandler(pollsService))
	news.RegisterRoutes(r, news.NewHandler(newsService))
	media.RegisterRoutes(r, media.NewHandler(mediaService))
	settings.RegisterRoutes(r, settings.NewHandler(settingsService))

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("tablero listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func pingWithRetry(ctx context.Context, db *sql.DB, attempts int, wait time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(wait)
	}
	return err
}
