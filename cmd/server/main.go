package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"advent-creator/internal/config"
	"advent-creator/internal/handler"
	"advent-creator/internal/logger"
	"advent-creator/internal/middleware"
	"advent-creator/internal/model"
	"advent-creator/internal/service"
	"advent-creator/internal/storage"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Calendar{}, &model.Day{}); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		slog.Error("storage init failed", "err", err)
		os.Exit(1)
	}
	slog.Info("storage ready", "backend", cfg.Storage.Backend)

	viewer := middleware.NewViewer(cfg.Viewer.TokenSecret)
	calSvc := service.NewCalendarService(db)
	daySvc := service.NewDayService(db)

	calH := handler.NewCalendarHandler(calSvc, store)
	dayH := handler.NewDayHandler(daySvc)
	uploadH := handler.NewUploadHandler(store)
	publicH := handler.NewPublicHandler(calSvc, viewer)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.POST("/calendars", calH.Create)
	api.GET("/calendars", calH.List)
	api.GET("/calendars/:id", calH.Get)
	api.PUT("/calendars/:id", calH.Update)
	api.POST("/calendars/:id/days", dayH.Create)
	api.PUT("/calendars/:id/days/:dayId", dayH.Update)
	api.DELETE("/calendars/:id/days/:dayId", dayH.Delete)
	api.POST("/upload", uploadH.Upload)

	api.GET("/c/:slug", publicH.Get)
	api.POST("/c/:slug/verify", publicH.Verify)
	api.GET("/c/:slug/opened", publicH.Opened)
	api.POST("/c/:slug/opened/:dayId", publicH.MarkOpened)

	if local, ok := store.(*storage.Local); ok {
		r.Static("/uploads", local.Dir())
	}

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
