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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	claimSlotHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/claim_slot"
	getAvailabilityHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/get_availability"
	getFacilitiesHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/get_facilities"
	getMyBookingsHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/get_my_bookings"
	getSlotHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/get_slot"
	releaseSlotHandler "github.com/eklokale/RoomBookingService/internal/api/handlers/release_slot"
	"github.com/eklokale/RoomBookingService/internal/api/middleware"
	"github.com/eklokale/RoomBookingService/internal/config"
	"github.com/eklokale/RoomBookingService/internal/infra/storage"
	facilityRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/facility"
	slotRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
	userServiceClient "github.com/eklokale/RoomBookingService/internal/integrations/userservice"
	"github.com/eklokale/RoomBookingService/internal/rules"
	facilitiesService "github.com/eklokale/RoomBookingService/internal/service/facilities"
	slotsService "github.com/eklokale/RoomBookingService/internal/service/slots"
	claimSlotUC "github.com/eklokale/RoomBookingService/internal/usecase/claim_slot"
	getAvailabilityUC "github.com/eklokale/RoomBookingService/internal/usecase/get_availability"
	releaseSlotUC "github.com/eklokale/RoomBookingService/internal/usecase/release_slot"
	"github.com/eklokale/RoomBookingService/pkg/dbmetrics"
	"github.com/eklokale/RoomBookingService/pkg/logger"
	"github.com/eklokale/RoomBookingService/pkg/metrics"
)

// facilityCacheTTL справочник помещений меняется редко
const facilityCacheTTL = 5 * time.Minute

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

	log.Info("Starting RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Таймзона, в которой живут календарные дни помещений
	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
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

	// Применяем миграции схемы
	migrator, err := storage.NewMigrator(db)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database schema at version %d", version)
	}

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		facilityRepository *facilityRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
	}

	// Движок правил бронирования
	engine := rules.Engine{
		MaxDailyMinutes:      cfg.Booking.MaxDailyMinutes,
		DefaultSlotMinutes:   cfg.Booking.DefaultSlotMinutes,
		SingleFacilityPerDay: cfg.Booking.SingleRoomPerDay,
	}

	// Инициализируем сервисы
	facilitiesSvc := facilitiesService.NewService(facilityRepository, facilityCacheTTL, log)
	slotsSvc := slotsService.NewService(slotRepository, facilityRepository, loc, log)

	// Инициализируем use cases
	claimUseCase := claimSlotUC.NewUseCase(
		slotRepository,
		userClient,
		engine,
		loc,
		metricsCollector,
		log,
	)

	releaseUseCase := releaseSlotUC.NewUseCase(
		slotRepository,
		metricsCollector,
		log,
	)

	availabilityUseCase := getAvailabilityUC.NewUseCase(
		slotRepository,
		facilitiesSvc,
		loc,
		log,
	)

	// Инициализируем handlers
	claimSlot := claimSlotHandler.NewHandler(claimUseCase, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilityUseCase, userClient, log)
	getSlot := getSlotHandler.NewHandler(slotsSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(slotsSvc, log)
	getFacilities := getFacilitiesHandler.NewHandler(facilitiesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов по IP
	if cfg.Server.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		r.Use(rl.Handler)
		log.Info("Rate limiting enabled (%.1f rps, burst %d)", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Картина дня, отфильтрованная по роли
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Справочник помещений
	api.HandleFunc("/facilities", getFacilities.Handle).Methods(http.MethodGet)

	// Слот по ID
	api.HandleFunc("/slots/{slot_id}", getSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Занятие слота
	protected.HandleFunc("/slots/{slot_id}/claim", claimSlot.Handle).Methods(http.MethodPost)

	// Освобождение слота
	protected.HandleFunc("/slots/{slot_id}/release", releaseSlot.Handle).Methods(http.MethodPost)

	// Бронирования пользователя на день
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
