// Package main запускает HTTP-сервис управления составом команд
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "team-membership-service/internal/http"
	"team-membership-service/internal/repository"
	"team-membership-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	token := os.Getenv("SERVICE_TOKEN")
	if token == "" {
		log.Fatal("SERVICE_TOKEN environment variable is required")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Инициализация репозиториев
	teamRepo := repository.NewTeamRepo(db)
	userRepo := repository.NewUserRepo(db)
	requestRepo := repository.NewJoinRequestRepo(db)
	projectRepo := repository.NewProjectRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Инициализация сервисов
	teamService := service.NewTeamService(teamRepo)
	userService := service.NewUserService(userRepo)

	// Внедряем txManager: accept должен добавить участника и снять заявку атомарно
	requestService := service.NewJoinRequestService(requestRepo, teamRepo, userRepo, txManager)
	projectService := service.NewProjectService(projectRepo)

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(teamService, userService, requestService, projectService, logger, token)

	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
