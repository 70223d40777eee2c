package main

import (
	"acceso-portal/config"
	"acceso-portal/internal/handler"
	"acceso-portal/internal/metrics"
	"acceso-portal/internal/notifier"
	"acceso-portal/internal/repository"
	"acceso-portal/internal/server"
	"acceso-portal/internal/services"
	"acceso-portal/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	defer l.Logger.Sync()

	m := metrics.New()
	userRepo := repository.NewMemoryUserRepository()
	telegram := notifier.NewTelegramNotifier(notifier.TelegramConfig{
		BaseURL:          cfg.TelegramAPIBase,
		LoginBotToken:    cfg.LoginBotToken,
		LoginChatID:      cfg.LoginChatID,
		RegisterBotToken: cfg.RegisterBotToken,
		RegisterChatID:   cfg.RegisterChatID,
	}, l)

	authService := services.NewAuthService(userRepo, telegram, m, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Status: handler.NewStatusHandler(cfg, authService),
	})

	if err := srv.Start(); err != nil {
		l.Errorf("server exited with error: %s", err)
	}
}
