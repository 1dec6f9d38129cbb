package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	advanceStageHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/advance_stage"
	confirmBookingHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/confirm_booking"
	exitSessionHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/exit_session"
	getCatalogHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/get_catalog"
	getDashboardHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/get_dashboard"
	getSessionHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/get_session"
	healthHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/health"
	makeSelectionHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/make_selection"
	retreatStageHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/retreat_stage"
	startSessionHandler "github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers/start_session"
	"github.com/m04kA/LondonHouse-ReservationService/internal/api/middleware"
	"github.com/m04kA/LondonHouse-ReservationService/internal/config"
	"github.com/m04kA/LondonHouse-ReservationService/internal/integrations/checkout"
	dashboardService "github.com/m04kA/LondonHouse-ReservationService/internal/service/dashboard"
	sessionsService "github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions"
	"github.com/m04kA/LondonHouse-ReservationService/pkg/logger"
	"github.com/m04kA/LondonHouse-ReservationService/pkg/metrics"
)

func main() {
	// .env необязателен, переменные окружения могут быть заданы снаружи
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LondonHouse-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	catalog := cfg.Catalog.ToDomain()
	log.Info("Catalog loaded (services=%d, stylists=%d, days=%d, slots=%d)",
		len(catalog.Services), len(catalog.Stylists), len(catalog.Period.Days), len(catalog.TimeSlots))

	// Инициализируем платежного коллаборатора
	var handoff checkout.Handoff
	switch cfg.Checkout.Mode {
	case config.CheckoutRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Checkout.Redis.Addr,
			Password: cfg.Checkout.Redis.Password,
			DB:       cfg.Checkout.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, queue=%s)", cfg.Checkout.Redis.Addr, cfg.Checkout.Redis.Queue)

		handoff = checkout.NewQueue(redisClient, cfg.Checkout.Redis.Queue, catalog.Period, log)

	case config.CheckoutPostgres:
		db, err := sql.Open("postgres", cfg.Checkout.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Checkout.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Checkout.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Checkout.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Checkout.Database.Host, cfg.Checkout.Database.Port, cfg.Checkout.Database.DBName)

		handoff = checkout.NewLedger(db, catalog.Period, log)

	default:
		handoff = checkout.NewPlaceholder(catalog.Period, log)
	}
	handoff = checkout.NewInstrumented(handoff, cfg.Checkout.Mode, metricsCollector)
	log.Info("Checkout mode: %s", cfg.Checkout.Mode)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		catalog,
		cfg.Wizard.SettleDelay(),
		cfg.Wizard.SessionTTL(),
		handoff,
		metricsCollector,
		log,
	)
	dashboardSvc := dashboardService.NewService(cfg.Dashboard.ToDomain(), log)

	// Фоновая очистка неактивных сессий
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessionSvc.Run(sweepCtx, cfg.Wizard.SweepInterval())
	log.Info("Session sweeper started (ttl=%s, interval=%s)", cfg.Wizard.SessionTTL(), cfg.Wizard.SweepInterval())

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(sessionSvc, log)
	startSession := startSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	makeSelection := makeSelectionHandler.NewHandler(sessionSvc, log)
	advanceStage := advanceStageHandler.NewHandler(sessionSvc, log)
	retreatStage := retreatStageHandler.NewHandler(sessionSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(sessionSvc, log)
	exitSession := exitSessionHandler.NewHandler(sessionSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	health := healthHandler.NewHandler(sessionSvc)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, log))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и дашборд ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	// Новая сессия
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)

	// Состояние сессии
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Выход из мастера
	api.HandleFunc("/sessions/{sessionId}", exitSession.Handle).Methods(http.MethodDelete)

	// Выбор услуги, мастера, даты или времени
	api.HandleFunc("/sessions/{sessionId}/selection/{field}", makeSelection.Handle).Methods(http.MethodPut)

	// Навигация по шагам
	api.HandleFunc("/sessions/{sessionId}/advance", advanceStage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/retreat", retreatStage.Handle).Methods(http.MethodPost)

	// Подтверждение и передача в оплату
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (open sessions=%d)", sessionSvc.Count())
}
