package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/config"
	"github.com/photoflow/photoflow/internal/database"
	"github.com/photoflow/photoflow/internal/handler"
	appmw "github.com/photoflow/photoflow/internal/middleware"
	"github.com/photoflow/photoflow/internal/queue"
	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/router"
	"github.com/photoflow/photoflow/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// MySQL backs the photographer identity store only.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database schema: %v", err)
	}
	cancel()

	// Redis drives the public gallery cache and rate limiter.  Both
	// degrade to pass-through when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	// Event consumer: logs finalized selections and settled payments.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	// Identity repositories (MySQL).
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Domain repositories (in-memory).
	sessions := repository.NewSessionRepo()
	photos := repository.NewPhotoRepo()
	packages := repository.NewPackageRepo()
	orders := repository.NewOrderRepo()
	payments := repository.NewPaymentRepo()
	watermarks := repository.NewWatermarkRepo()

	// Services.
	selection := service.NewSelectionService(sessions, photos)
	selection.PublishFinalized = service.PublishSelectionFinalized
	commerce := service.NewCommerceService(packages, orders, payments)
	commerce.PublishPaid = service.PublishOrderPaid

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	galleryH := handler.NewGalleryHandler(sessions, photos, orders)
	publicH := handler.NewPublicGalleryHandler(sessions, photos, selection)
	publicH.Redis = rdb
	publicH.CachePrefix = cacheCfg.KeyPrefix
	clientH := handler.NewClientHandler(sessions, photos, selection)
	clientH.Redis = rdb
	clientH.CachePrefix = cacheCfg.KeyPrefix
	commerceOwnerH := handler.NewCommerceOwnerHandler(packages, orders, payments, commerce)
	commercePublicH := handler.NewCommercePublicHandler(sessions, packages, commerce)
	watermarkH := handler.NewWatermarkHandler(watermarks, sessions, photos)
	watermarkH.DefaultText = cfg.WatermarkText

	e := echo.New()
	e.HideBanner = true

	rateLimit := appmw.NewTokenBucket(rateCfg, rdb)
	cache := appmw.NewGalleryCache(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterGallery(e, galleryH, cfg.JWTSecret)
	router.RegisterWatermark(e, watermarkH, cfg.JWTSecret)
	router.RegisterCommerceOwner(e, commerceOwnerH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, clientH, commercePublicH, rateLimit, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
