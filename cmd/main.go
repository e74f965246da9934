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

	cancelBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/reservly/booking-engine/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/get_booking"
	markNoShowHandler "github.com/reservly/booking-engine/internal/api/handlers/mark_no_show"
	matchResourcesHandler "github.com/reservly/booking-engine/internal/api/handlers/match_resources"
	rescheduleBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/reschedule_booking"
	validateBookingHandler "github.com/reservly/booking-engine/internal/api/handlers/validate_booking"
	"github.com/reservly/booking-engine/internal/api/middleware"
	"github.com/reservly/booking-engine/internal/config"
	auditRepo "github.com/reservly/booking-engine/internal/infra/storage/audit"
	bookingRepo "github.com/reservly/booking-engine/internal/infra/storage/booking"
	resourceRepo "github.com/reservly/booking-engine/internal/infra/storage/resource"
	rulesRepo "github.com/reservly/booking-engine/internal/infra/storage/rules"
	scheduleRepo "github.com/reservly/booking-engine/internal/infra/storage/schedule"
	auditService "github.com/reservly/booking-engine/internal/service/audit"
	bookingsService "github.com/reservly/booking-engine/internal/service/bookings"
	constraintsService "github.com/reservly/booking-engine/internal/service/constraints"
	matcherService "github.com/reservly/booking-engine/internal/service/matcher"
	scheduleService "github.com/reservly/booking-engine/internal/service/schedule"
	slotsService "github.com/reservly/booking-engine/internal/service/slots"
	cancelBookingUC "github.com/reservly/booking-engine/internal/usecase/cancel_booking"
	completeBookingUC "github.com/reservly/booking-engine/internal/usecase/complete_booking"
	createBookingUC "github.com/reservly/booking-engine/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/reservly/booking-engine/internal/usecase/get_available_slots"
	getBookingUC "github.com/reservly/booking-engine/internal/usecase/get_booking"
	markNoShowUC "github.com/reservly/booking-engine/internal/usecase/mark_no_show"
	matchResourcesUC "github.com/reservly/booking-engine/internal/usecase/match_resources"
	rescheduleBookingUC "github.com/reservly/booking-engine/internal/usecase/reschedule_booking"
	validateBookingUC "github.com/reservly/booking-engine/internal/usecase/validate_booking"
	"github.com/reservly/booking-engine/pkg/dbmetrics"
	"github.com/reservly/booking-engine/pkg/logger"
	"github.com/reservly/booking-engine/pkg/metrics"
	"github.com/reservly/booking-engine/pkg/simpletxmanager"
	"github.com/reservly/booking-engine/pkg/txmanager"
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

	log.Info("Starting booking-engine...")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		resourceRepository *resourceRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		rulesRepository    *rulesRepo.Repository
		auditRepository    *auditRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Каталог правил с TTL кэшем
	catalogSource := rulesRepo.NewCatalogSource(
		rulesRepository,
		time.Duration(cfg.Rules.CacheTTLSeconds)*time.Second,
	)

	// Инициализируем сервисы
	slotGenerator := slotsService.NewGenerator()
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	matcherSvc := matcherService.NewService(resourceRepository, bookingRepository, scheduleSvc, log)
	validator := constraintsService.NewValidator(catalogSource, log)
	auditRecorder := auditService.NewRecorder(auditRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, auditRecorder, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		resourceRepository, bookingRepository, scheduleSvc, slotGenerator, log)
	matchResourcesUseCase := matchResourcesUC.NewUseCase(matcherSvc, log)
	validateBookingUseCase := validateBookingUC.NewUseCase(
		bookingRepository, matcherSvc, scheduleSvc, validator, auditRecorder, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, matcherSvc, scheduleSvc, validator, auditRecorder, txMgr, log)
	getBookingUseCase := getBookingUC.NewUseCase(bookingSvc, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository, resourceRepository, validator, auditRecorder, txMgr, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository, resourceRepository, scheduleSvc, validator, auditRecorder, txMgr, log)
	markNoShowUseCase := markNoShowUC.NewUseCase(bookingSvc, log)
	completeBookingUseCase := completeBookingUC.NewUseCase(bookingSvc, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	matchResources := matchResourcesHandler.NewHandler(matchResourcesUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(getBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	markNoShow := markNoShowHandler.NewHandler(markNoShowUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты ресурса на день
	api.HandleFunc("/resources/{resourceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор ресурсов под запрос
	api.HandleFunc("/resources/match",
		matchResources.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Tenant-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Предварительная проверка запроса на бронирование
	protected.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// --- Операции персонала ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffOnly)

	// Отметка неявки
	staff.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)

	// Завершение бронирования
	staff.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

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
