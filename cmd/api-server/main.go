package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"foodgram/database"
	"foodgram/internal/api/cache"
	"foodgram/internal/api/dto"
	"foodgram/internal/api/handler"
	"foodgram/internal/api/middleware"
	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
	"foodgram/internal/api/service"
	"foodgram/internal/config"
	"foodgram/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}

	refCache, err := cache.NewReferenceCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// cache is an optimization; run uncached rather than refuse to start
		logger.Warn("redis_unavailable_running_uncached", "error", err)
		refCache = nil
	} else {
		defer refCache.Close()
	}

	images, err := storage.NewFSImageStore(cfg.MediaPath, "/media")
	if err != nil {
		logger.Error("media_dir_init_failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	tagRepo := repository.NewTagRepo(db)
	ingredientRepo := repository.NewIngredientRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)

	// The three toggle relations share one edge repo type; only the edge
	// model and its columns differ.
	favoriteEdges := repository.NewEdgeRepo(db, "user_id", "recipe_id",
		func(userID string, recipeID int64) models.Favorite {
			return models.Favorite{UserID: userID, RecipeID: recipeID}
		})
	cartEdges := repository.NewEdgeRepo(db, "user_id", "recipe_id",
		func(userID string, recipeID int64) models.ShoppingCart {
			return models.ShoppingCart{UserID: userID, RecipeID: recipeID}
		})
	subEdges := repository.NewEdgeRepo(db, "follower_id", "following_id",
		func(followerID string, followingID string) models.Subscription {
			return models.Subscription{FollowerID: followerID, FollowingID: followingID}
		})

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	tagService := service.NewTagService(tagRepo, refCache)
	ingredientService := service.NewIngredientService(ingredientRepo, refCache)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, favoriteEdges, cartEdges, images)
	subscriptionService := service.NewSubscriptionService(subEdges, userRepo, recipeRepo)
	shoppingListService := service.NewShoppingListService(recipeRepo)

	recipeLookup := func(ctx context.Context, id int64) (*models.Recipe, error) {
		return recipeRepo.GetByID(ctx, id)
	}
	favoriteRelation := service.NewRelationService[models.Recipe, int64](favoriteEdges, recipeLookup, nil)
	cartRelation := service.NewRelationService[models.Recipe, int64](cartEdges, recipeLookup, nil)

	shortRecipe := func(r models.Recipe) any {
		return dto.FromRecipeToShortResponse(r, images.URL(r.Image))
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	userHandler := handler.NewUserHandler(userService, subscriptionService, images.URL)
	tagHandler := handler.NewTagHandler(tagService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService, subscriptionService, shoppingListService, images.URL)
	favoriteHandler := handler.NewRecipeRelationHandler(favoriteRelation, shortRecipe)
	cartHandler := handler.NewRecipeRelationHandler(cartRelation, shortRecipe)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Static("/media", cfg.MediaPath)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")

	authGroup := api.Group("/auth", middleware.RateLimitMiddleware(5, 10))
	authHandler.RegisterRoutes(authGroup)

	users := api.Group("/users")
	users.GET("", optionalAuth, userHandler.List)
	users.GET("/me", requireAuth, userHandler.Me)
	users.POST("/set_password", requireAuth, userHandler.SetPassword)
	users.GET("/subscriptions", requireAuth, userHandler.Subscriptions)
	users.GET("/:id", optionalAuth, userHandler.Get)
	users.POST("/:id/subscribe", requireAuth, userHandler.Subscribe)
	users.DELETE("/:id/subscribe", requireAuth, userHandler.Unsubscribe)

	tags := api.Group("/tags")
	tags.GET("", tagHandler.List)
	tags.GET("/:id", tagHandler.Get)
	tags.POST("", requireAuth, requireAdmin, tagHandler.Create)

	ingredients := api.Group("/ingredients")
	ingredients.GET("", ingredientHandler.List)
	ingredients.GET("/:id", ingredientHandler.Get)
	ingredients.POST("", requireAuth, requireAdmin, ingredientHandler.Create)

	recipes := api.Group("/recipes")
	recipes.GET("", optionalAuth, recipeHandler.List)
	recipes.GET("/download_shopping_cart", requireAuth, recipeHandler.DownloadShoppingCart)
	recipes.GET("/:id", optionalAuth, recipeHandler.Get)
	recipes.POST("", requireAuth, recipeHandler.Create)
	recipes.PATCH("/:id", requireAuth, recipeHandler.Update)
	recipes.DELETE("/:id", requireAuth, recipeHandler.Delete)
	recipes.POST("/:id/favorite", requireAuth, favoriteHandler.Add)
	recipes.DELETE("/:id/favorite", requireAuth, favoriteHandler.Remove)
	recipes.POST("/:id/shopping_cart", requireAuth, cartHandler.Add)
	recipes.DELETE("/:id/shopping_cart", requireAuth, cartHandler.Remove)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server_starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server_stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
