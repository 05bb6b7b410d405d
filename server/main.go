package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/config"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/middlewares"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/routes"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/services/responder"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var store storage.Storage
	switch cfg.StorageBackend {
	case "postgres":
		gs, err := storage.Open(ctx, cfg)
		if err != nil {
			logging.AppLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		store = gs
	default:
		store = storage.NewMemStorage()
	}
	defer store.Close()

	seeds, err := storage.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		logging.AppLogger.Warn("seed file not loaded, using built-in defaults",
			zap.String("file", cfg.SeedFile), zap.Error(err))
		seeds = storage.DefaultSeedFaqs()
	}
	if err := storage.Seed(ctx, store, seeds); err != nil {
		logging.AppLogger.Error("faq seeding error", zap.Error(err))
		os.Exit(1)
	}

	resp := responder.New(store)
	chatCtrl := controllers.NewChatController(store, resp)
	faqCtrl := controllers.NewFaqController(store)
	convCtrl := controllers.NewConversationController(store)
	authCtrl := controllers.NewAuthController(store, cfg)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl))
	r.Mount("/faqs", routes.FaqRoutes(faqCtrl, cfg))
	r.Mount("/conversations", routes.ConversationRoutes(convCtrl))
	r.Mount("/stats", routes.StatsRoutes(convCtrl))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.AppLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.AppLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
