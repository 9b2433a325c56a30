package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"aurelia-backend/internal/catalog"
	"aurelia-backend/internal/chat"
	"aurelia-backend/internal/questionnaire"
	"aurelia-backend/internal/results"
	"aurelia-backend/internal/services/health"
	"aurelia-backend/internal/shared/config"
	"aurelia-backend/internal/shared/server"
	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/storage/db"
	"aurelia-backend/internal/shared/storage/document"
	"aurelia-backend/internal/shared/storage/kv"
	"aurelia-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config               config.Config
	Router               *gin.Engine
	DB                   *sql.DB
	Redis                *redis.Client
	Mongo                *mongo.Client
	ResultStore          results.Store
	ResultStoreName      string
	WizardRepo           questionnaire.Repo
	Janitor              *questionnaire.Janitor
	Health               *health.Service
	QuestionnaireService *questionnaire.Service
	ChatService          *chat.Service
	QuestionnaireHandler *questionnaire.Handler
	ResultsHandler       *results.Handler
	CatalogHandler       *catalog.Handler
	ChatHandler          *chat.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ResultStore) == "" {
		cfg.ResultStore = "memory"
	}

	app := &App{Config: cfg}
	app.Health = health.NewService(cfg.ResultStore)

	store, name, err := buildResultStore(ctx, app)
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}
	app.ResultStore = store
	app.ResultStoreName = name
	app.Health.SetStore(name)

	wizardRepo := questionnaire.NewMemoryRepo()
	app.WizardRepo = wizardRepo
	app.Janitor = &questionnaire.Janitor{Repo: wizardRepo, IdleTimeout: cfg.WizardIdleTimeout}

	app.QuestionnaireService = questionnaire.NewService(wizardRepo, store)
	app.ChatService = chat.NewService()
	app.QuestionnaireHandler = questionnaire.NewHandler(app.QuestionnaireService)
	app.ResultsHandler = results.NewHandler(store, results.NewRenderer(store))
	app.CatalogHandler = catalog.NewHandler(catalog.NewMemoryRoutineRepo())
	app.ChatHandler = chat.NewHandler(app.ChatService)

	if app.QuestionnaireHandler == nil || app.ResultsHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               cfg,
		Health:               app.Health,
		QuestionnaireHandler: app.QuestionnaireHandler,
		ResultsHandler:       app.ResultsHandler,
		CatalogHandler:       app.CatalogHandler,
		ChatHandler:          app.ChatHandler,
		RateLimiter:          middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":                     cfg.Env,
		"result_store":            name,
		"result_store_configured": cfg.ResultStore,
	})
	return app, nil
}

// buildResultStore returns the store in use and its name, which differs from
// the configured one after a dev fallback.
func buildResultStore(ctx context.Context, app *App) (results.Store, string, error) {
	cfg := app.Config
	switch cfg.ResultStore {
	case "redis":
		client, err := kv.Connect(ctx, kv.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fallbackStore(cfg, err)
		}
		app.Redis = client
		app.Health.Register("redis", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		return results.NewRedisStore(client, cfg.ResultTTL), "redis", nil

	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return fallbackStore(cfg, err)
		}
		if _, err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return fallbackStore(cfg, fmt.Errorf("run migrations: %w", err))
		}
		app.DB = sqlDB
		app.Health.Register("postgres", sqlDB.PingContext)
		return &results.PGStore{DB: sqlDB}, "postgres", nil

	case "mongo":
		client, err := document.Connect(ctx, cfg.MongoURI, 10*time.Second)
		if err != nil {
			return fallbackStore(cfg, err)
		}
		app.Mongo = client
		app.Health.Register("mongo", func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		})
		coll := client.Database(cfg.MongoDatabase).Collection(results.MongoCollection)
		return results.NewMongoStore(coll), "mongo", nil

	default:
		return results.NewMemoryStore(), "memory", nil
	}
}

// fallbackStore keeps dev environments usable when a backend is down.
func fallbackStore(cfg config.Config, err error) (results.Store, string, error) {
	if !isDevLike(cfg.Env) {
		return nil, "", fmt.Errorf("result store %s: %w", cfg.ResultStore, err)
	}
	telemetry.Warn("bootstrap.result_store_fallback", map[string]any{
		"result_store": cfg.ResultStore,
		"error":        err,
	})
	return results.NewMemoryStore(), "memory", nil
}

// Close releases backend connections.
func (a *App) Close(ctx context.Context) {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			telemetry.Warn("bootstrap.redis_close_failed", map[string]any{"error": err})
		}
	}
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			telemetry.Warn("bootstrap.mongo_close_failed", map[string]any{"error": err})
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			telemetry.Warn("bootstrap.db_close_failed", map[string]any{"error": err})
		}
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
