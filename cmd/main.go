package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/foodgram/docs"
	"github.com/sbilibin2017/foodgram/internal/config"
	"github.com/sbilibin2017/foodgram/internal/handlers"
	"github.com/sbilibin2017/foodgram/internal/jwt"
	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/render"
	"github.com/sbilibin2017/foodgram/internal/repositories"
	"github.com/sbilibin2017/foodgram/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title foodgram API
// @version 1.0.0
// @description Recipe sharing service: recipes, favorites, shopping cart and subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to the backing stores, wires the application and serves HTTP
// until ctx is cancelled or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if _, err := db.ExecContext(ctx, repositories.Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, domain events are disabled")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// Repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	tagReadRepo := repositories.NewTagReadRepository(db, txGetter)
	tagCacheRepo := repositories.NewTagCacheRepository(rdb, cfg.TagCacheTTL)
	ingredientReadRepo := repositories.NewIngredientReadRepository(db, txGetter)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db, txGetter)
	recipeReadRepo := repositories.NewRecipeReadRepository(db, txGetter)
	membershipWriteRepo := repositories.NewMembershipWriteRepository(db, txGetter)
	followWriteRepo := repositories.NewFollowWriteRepository(db, txGetter)
	followReadRepo := repositories.NewFollowReadRepository(db, txGetter)
	shoppingListRepo := repositories.NewShoppingListReadRepository(db, txGetter)

	// Services
	events := services.NewEventPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	catalogService := services.NewCatalogService(tagReadRepo, tagCacheRepo, ingredientReadRepo)
	recipeService := services.NewRecipeService(recipeWriteRepo, recipeReadRepo, catalogService, catalogService, events)
	membershipService := services.NewMembershipService(
		membershipWriteRepo, recipeReadRepo, followWriteRepo, followReadRepo, userReadRepo, events, cfg.RecipesLimit,
	)
	shoppingListService := services.NewShoppingListService(shoppingListRepo, render.NewText())

	// Router
	tx := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, authService))

		// Public routes
		r.With(tx).Post("/users/", handlers.NewRegisterHandler(authService))
		r.Post("/auth/token/login/", handlers.NewLoginHandler(authService))
		r.Get("/tags/", handlers.NewTagListHandler(catalogService))
		r.Get("/tags/{id}/", handlers.NewTagHandler(catalogService))
		r.Get("/ingredients/", handlers.NewIngredientListHandler(catalogService))
		r.Get("/ingredients/{id}/", handlers.NewIngredientHandler(catalogService))
		r.Get("/recipes/", handlers.NewRecipeListHandler(recipeService, cfg.PageSize))
		r.Get("/recipes/{id}/", handlers.NewRecipeGetHandler(recipeService))
		r.Get("/users/", handlers.NewUserListHandler(authService, cfg.PageSize))
		r.Get("/users/{id}/", handlers.NewUserProfileHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)

			r.Get("/users/me/", handlers.NewMeHandler())
			r.Get("/users/subscriptions/", handlers.NewSubscriptionListHandler(membershipService, cfg.PageSize))
			r.Get("/recipes/download_shopping_cart/", handlers.NewDownloadShoppingCartHandler(shoppingListService))

			r.Group(func(r chi.Router) {
				r.Use(tx)

				r.Post("/users/set_password/", handlers.NewSetPasswordHandler(authService))
				r.Post("/users/{id}/subscribe/", handlers.NewSubscribeHandler(membershipService))
				r.Delete("/users/{id}/subscribe/", handlers.NewUnsubscribeHandler(membershipService))
				r.Post("/recipes/", handlers.NewRecipeCreateHandler(recipeService))
				r.Patch("/recipes/{id}/", handlers.NewRecipeUpdateHandler(recipeService))
				r.Delete("/recipes/{id}/", handlers.NewRecipeDeleteHandler(recipeService))
				r.Post("/recipes/{id}/favorite/", handlers.NewMembershipAddHandler(membershipService, models.Favorite))
				r.Delete("/recipes/{id}/favorite/", handlers.NewMembershipRemoveHandler(membershipService, models.Favorite))
				r.Post("/recipes/{id}/shopping_cart/", handlers.NewMembershipAddHandler(membershipService, models.ShoppingCart))
				r.Delete("/recipes/{id}/shopping_cart/", handlers.NewMembershipRemoveHandler(membershipService, models.ShoppingCart))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr())),
	))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
