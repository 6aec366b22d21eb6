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
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	calendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/calendar"
	deleteCapacityConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_capacity_config"
	getAvailableDaysHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_days"
	getCapacityConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_capacity_config"
	updateCapacityConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_capacity_config"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	reportCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/report"
	capacityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/capacity"
	offerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/offer"
	offerStoreClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/offerstore"
	capacityService "github.com/m04kA/SMC-AvailabilityService/internal/service/capacity"
	computeCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_calendar"
	getAvailableDaysUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil-коллектор безопасно передавать в use cases: Observe* ничего не делают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		metricsCollector.RegisterDB(db, cfg.Database.DBName)
		log.Info("Database pool metrics registered")
	}

	// Кеш отчётов (опционально)
	var cache getAvailableDaysUC.ReportCache
	if cfg.Cache.Enabled {
		redisClient, err := reportCache.NewRedisClient(context.Background(),
			cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		cache = reportCache.NewCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second, cfg.Cache.Prefix)
		log.Info("Report cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Источник таймслотов и бронирований
	var source getAvailableDaysUC.OfferDataSource
	switch cfg.Upstream.Source {
	case config.SourceHTTP:
		source = offerStoreClient.NewClient(
			cfg.Upstream.URL,
			cfg.Upstream.Token,
			time.Duration(cfg.Upstream.Timeout)*time.Second,
			log,
		)
		log.Info("Offer data source: http (url=%s, timeout=%ds)", cfg.Upstream.URL, cfg.Upstream.Timeout)
	default:
		source = offerRepo.NewRepository(db)
		log.Info("Offer data source: postgres")
	}

	// Инициализируем репозитории и сервисы
	capacityRepository := capacityRepo.NewRepository(db)
	defaults := cfg.Availability.Policy()

	capacitySvc := capacityService.NewService(capacityRepository, defaults, log)

	// Инициализируем use cases
	computeCalendarUseCase := computeCalendarUC.NewUseCase(
		defaults,
		cfg.Availability.MaxRangeDays,
		metricsCollector,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		source,
		cfg.Upstream.Source,
		capacityRepository,
		cache,
		defaults,
		cfg.Availability.MaxRangeDays,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	calendar := calendarHandler.NewHandler(computeCalendarUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getCapacityConfig := getCapacityConfigHandler.NewHandler(capacitySvc, log)
	updateCapacityConfig := updateCapacityConfigHandler.NewHandler(capacitySvc, log)
	deleteCapacityConfig := deleteCapacityConfigHandler.NewHandler(capacitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// Расчёт по данным из тела запроса (метод проверяет сам handler)
	r.HandleFunc("/api/calendar", calendar.Handle)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные дни оффера
	api.HandleFunc("/offers/{offerId}/available-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Конфигурация ёмкости оффера
	api.HandleFunc("/offers/{offerId}/capacity-config", getCapacityConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offers/{offerId}/capacity-config", updateCapacityConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/offers/{offerId}/capacity-config", deleteCapacityConfig.Handle).Methods(http.MethodDelete)

	// Глобальная конфигурация ёмкости
	api.HandleFunc("/capacity-config", getCapacityConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capacity-config", updateCapacityConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/capacity-config", deleteCapacityConfig.Handle).Methods(http.MethodDelete)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondMethodNotAllowed(w)
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.Recovery(log)(middleware.CORS()(r)),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
