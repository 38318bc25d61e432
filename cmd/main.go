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

	cancelReservationHandler "github.com/agendly/booking-service/internal/api/handlers/cancel_reservation"
	createExpenseHandler "github.com/agendly/booking-service/internal/api/handlers/create_expense"
	createReservationHandler "github.com/agendly/booking-service/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/agendly/booking-service/internal/api/handlers/create_service"
	getAvailableSlotsHandler "github.com/agendly/booking-service/internal/api/handlers/get_available_slots"
	getBusinessExpensesHandler "github.com/agendly/booking-service/internal/api/handlers/get_business_expenses"
	getBusinessReservationsHandler "github.com/agendly/booking-service/internal/api/handlers/get_business_reservations"
	getBusinessScheduleHandler "github.com/agendly/booking-service/internal/api/handlers/get_business_schedule"
	getBusinessServicesHandler "github.com/agendly/booking-service/internal/api/handlers/get_business_services"
	getMetricsHandler "github.com/agendly/booking-service/internal/api/handlers/get_metrics"
	getProfessionalScheduleHandler "github.com/agendly/booking-service/internal/api/handlers/get_professional_schedule"
	getReservationHandler "github.com/agendly/booking-service/internal/api/handlers/get_reservation"
	purgeReservationHandler "github.com/agendly/booking-service/internal/api/handlers/purge_reservation"
	rescheduleReservationHandler "github.com/agendly/booking-service/internal/api/handlers/reschedule_reservation"
	updateBusinessScheduleHandler "github.com/agendly/booking-service/internal/api/handlers/update_business_schedule"
	updateProfessionalScheduleHandler "github.com/agendly/booking-service/internal/api/handlers/update_professional_schedule"
	updateReservationStatusHandler "github.com/agendly/booking-service/internal/api/handlers/update_reservation_status"
	"github.com/agendly/booking-service/internal/api/middleware"
	"github.com/agendly/booking-service/internal/config"
	"github.com/agendly/booking-service/internal/infra/migrations"
	catalogRepo "github.com/agendly/booking-service/internal/infra/storage/catalog"
	expenseRepo "github.com/agendly/booking-service/internal/infra/storage/expense"
	reservationRepo "github.com/agendly/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/agendly/booking-service/internal/infra/storage/schedule"
	staffRepo "github.com/agendly/booking-service/internal/infra/storage/staff"
	catalogService "github.com/agendly/booking-service/internal/service/catalog"
	expensesService "github.com/agendly/booking-service/internal/service/expenses"
	reservationsService "github.com/agendly/booking-service/internal/service/reservations"
	scheduleService "github.com/agendly/booking-service/internal/service/schedule"
	createReservationUC "github.com/agendly/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/agendly/booking-service/internal/usecase/get_available_slots"
	getMetricsUC "github.com/agendly/booking-service/internal/usecase/get_metrics"
	rescheduleReservationUC "github.com/agendly/booking-service/internal/usecase/reschedule_reservation"
	"github.com/agendly/booking-service/pkg/dbmetrics"
	"github.com/agendly/booking-service/pkg/logger"
	"github.com/agendly/booking-service/pkg/metrics"
	"github.com/agendly/booking-service/pkg/simpletxmanager"
	"github.com/agendly/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	if err := migrations.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrations.Version(context.Background(), db); err == nil {
		log.Info("Database migrations applied, current version=%d", version)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		staffRepository       *staffRepo.Repository
		catalogRepository     *catalogRepo.Repository
		expenseRepository     *expenseRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		expenseRepository = expenseRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		expenseRepository = expenseRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, staffRepository, log)
	expensesSvc := expensesService.NewService(expenseRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		staffRepository,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		staffRepository,
		catalogRepository,
		txMgr,
		log,
	)

	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	getMetricsUseCase := getMetricsUC.NewUseCase(
		reservationRepository,
		staffRepository,
		expenseRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	purgeReservation := purgeReservationHandler.NewHandler(reservationsSvc, log)
	getBusinessReservations := getBusinessReservationsHandler.NewHandler(reservationsSvc, log)
	getMetrics := getMetricsHandler.NewHandler(getMetricsUseCase, log)
	getBusinessSchedule := getBusinessScheduleHandler.NewHandler(scheduleSvc, log)
	updateBusinessSchedule := updateBusinessScheduleHandler.NewHandler(scheduleSvc, log)
	getProfessionalSchedule := getProfessionalScheduleHandler.NewHandler(scheduleSvc, log)
	updateProfessionalSchedule := updateProfessionalScheduleHandler.NewHandler(scheduleSvc, log)
	createExpense := createExpenseHandler.NewHandler(expensesSvc, log)
	getBusinessExpenses := getBusinessExpensesHandler.NewHandler(expensesSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getBusinessServices := getBusinessServicesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
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

	// Доступные слоты специалиста на дату
	api.HandleFunc("/businesses/{businessId}/professionals/{professionalId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание бизнеса
	api.HandleFunc("/businesses/{businessId}/schedule",
		getBusinessSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", purgeReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// --- Управление бизнесом ---
	protected.HandleFunc("/businesses/{businessId}/reservations", getBusinessReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/metrics", getMetrics.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/schedule", updateBusinessSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/expenses", createExpense.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/expenses", getBusinessExpenses.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/services", getBusinessServices.Handle).Methods(http.MethodGet)

	// --- Расписания специалистов ---
	protected.HandleFunc("/professionals/{professionalId}/schedule", getProfessionalSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/schedule", updateProfessionalSchedule.Handle).Methods(http.MethodPut)

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
