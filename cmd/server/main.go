package main

import (
	"context"
	"log"

	"trip-event-page/config"
	"trip-event-page/internal/database"
	"trip-event-page/internal/handler"
	"trip-event-page/internal/repository"
	"trip-event-page/internal/service"
	"trip-event-page/internal/store"
	"trip-event-page/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env가 없으면 그냥 환경변수/기본값 사용
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	ctx := context.Background()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, &cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// redis는 기기 저장소 역할이라 죽어 있어도 메모리 상태로 계속 간다
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, local store will not persist: %v", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	eventStore := store.NewEventStore(rdb, cfg.Admin)
	eventStore.Load(ctx)
	themeStore := store.NewThemeStore(rdb)
	themeStore.Load(ctx)

	eventRepo := repository.NewEventRepository(pool)
	contentRepo := repository.NewContentRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)

	gateway := service.NewEventService(eventRepo, contentRepo, scheduleRepo, locationRepo)
	sync := service.NewSyncService(gateway, eventStore)

	router := gin.Default()
	router.Use(cors.Default())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	gate := handler.RequireAdmin(eventStore)

	handler.NewPublicHandler(sync).RegisterRoutes(router)
	handler.NewAdminHandler(eventStore).RegisterRoutes(router)
	handler.NewThemeHandler(themeStore).RegisterRoutes(router)
	handler.NewEventHandler(sync, gateway).RegisterRoutes(router, gate)

	if cfg.Cloudinary.CloudName != "" {
		uploader, err := upload.NewCloudinaryUploader(&cfg.Cloudinary)
		if err != nil {
			log.Fatalf("Failed to initialize uploader: %v", err)
		}
		handler.NewUploadHandler(uploader).RegisterRoutes(router, gate)
	} else {
		log.Println("Cloudinary not configured, upload endpoint disabled")
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
