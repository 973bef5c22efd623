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

	"github.com/m04kA/VeloStudio-SeatingService/internal/accounts"
	cancelReservationHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/cancel_reservation"
	claimReservationHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/claim_reservation"
	createWalkInHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/create_walkin"
	getReservationHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/get_reservation"
	getSlotReservationsHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/get_slot_reservations"
	getSlotsHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/get_slots"
	reassignStandHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/reassign_stand"
	seatSlotHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/seat_slot"
	suggestSeatsHandler "github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers/suggest_seats"
	"github.com/m04kA/VeloStudio-SeatingService/internal/api/middleware"
	"github.com/m04kA/VeloStudio-SeatingService/internal/config"
	assignmentRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/assignment"
	clientsRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/clients"
	inventoryRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/inventory"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
	veloClient "github.com/m04kA/VeloStudio-SeatingService/internal/integrations/velocloud"
	bookingService "github.com/m04kA/VeloStudio-SeatingService/internal/service/booking"
	provisioningService "github.com/m04kA/VeloStudio-SeatingService/internal/service/provisioning"
	seatSlotUC "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/seat_slot"
	suggestSeatsUC "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/suggest_seats"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/logger"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/metrics"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"
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

	log.Info("Starting VeloStudio-SeatingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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
		metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Привязка станков к аккаунтам внешней платформы
	accountMapping := accounts.NewMapping(cfg.Accounts)
	log.Info("Account mapping loaded: %d stands bound", accountMapping.Size())

	// Клиент платформы виртуального велоспорта
	platformClient := veloClient.NewClient(time.Duration(cfg.Velo.Timeout)*time.Second, log)
	log.Info("Velo platform client initialized (timeout=%ds)", cfg.Velo.Timeout)

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(db)
	inventoryRepository := inventoryRepo.NewRepository(db)
	clientsRepository := clientsRepo.NewRepository(db)
	assignmentRepository := assignmentRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingEngine := bookingService.NewEngine(
		scheduleRepository,
		inventoryRepository,
		txMgr,
		log,
	)

	var provisioningMetrics provisioningService.MetricsRecorder
	if cfg.Metrics.Enabled {
		provisioningMetrics = metricsCollector
	}
	provisioner := provisioningService.NewService(
		assignmentRepository,
		platformClient,
		cfg.Velo.DefaultFTP,
		provisioningMetrics,
		log,
	)

	// Инициализируем use cases
	suggestSeatsUseCase := suggestSeatsUC.NewUseCase(
		scheduleRepository,
		inventoryRepository,
		clientsRepository,
		log,
	)

	seatSlotUseCase := seatSlotUC.NewUseCase(
		scheduleRepository,
		clientsRepository,
		accountMapping,
		provisioner,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(scheduleRepository, log)
	getSlotReservations := getSlotReservationsHandler.NewHandler(scheduleRepository, log)
	getReservation := getReservationHandler.NewHandler(scheduleRepository, log)
	claimReservation := claimReservationHandler.NewHandler(bookingEngine, log)
	cancelReservation := cancelReservationHandler.NewHandler(bookingEngine, log)
	createWalkIn := createWalkInHandler.NewHandler(bookingEngine, log)
	reassignStand := reassignStandHandler.NewHandler(bookingEngine, log)
	suggestSeats := suggestSeatsHandler.NewHandler(suggestSeatsUseCase, log)
	seatSlot := seatSlotHandler.NewHandler(seatSlotUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание и состояние слотов
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/reservations", getSlotReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирование мест ---
	protected.HandleFunc("/reservations/{reservationId}/claim", claimReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/walkins", createWalkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/reassign", reassignStand.Handle).Methods(http.MethodPost)

	// --- Подбор мест и рассадка ---
	protected.HandleFunc("/slots/{slotId}/clients/{clientId}/suggestions", suggestSeats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}/seat", seatSlot.Handle).Methods(http.MethodPost)

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
