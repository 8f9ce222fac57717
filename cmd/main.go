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

	abandonSessionHandler "github.com/explorio/booking-service/internal/api/handlers/abandon_session"
	confirmPaymentHandler "github.com/explorio/booking-service/internal/api/handlers/confirm_payment"
	continueSessionHandler "github.com/explorio/booking-service/internal/api/handlers/continue_session"
	getActivityHandler "github.com/explorio/booking-service/internal/api/handlers/get_activity"
	getProviderHandler "github.com/explorio/booking-service/internal/api/handlers/get_provider"
	getSessionHandler "github.com/explorio/booking-service/internal/api/handlers/get_session"
	listActivitiesHandler "github.com/explorio/booking-service/internal/api/handlers/list_activities"
	listAddonsHandler "github.com/explorio/booking-service/internal/api/handlers/list_addons"
	listReferenceHandler "github.com/explorio/booking-service/internal/api/handlers/list_reference"
	recordActionsHandler "github.com/explorio/booking-service/internal/api/handlers/record_actions"
	startBookingHandler "github.com/explorio/booking-service/internal/api/handlers/start_booking"
	stepBackHandler "github.com/explorio/booking-service/internal/api/handlers/step_back"
	submitGuestInfoHandler "github.com/explorio/booking-service/internal/api/handlers/submit_guest_info"
	submitVerificationHandler "github.com/explorio/booking-service/internal/api/handlers/submit_verification"
	updateAddonsHandler "github.com/explorio/booking-service/internal/api/handlers/update_addons"
	"github.com/explorio/booking-service/internal/api/middleware"
	"github.com/explorio/booking-service/internal/config"
	catalogStorage "github.com/explorio/booking-service/internal/infra/storage/catalog"
	sessionStorage "github.com/explorio/booking-service/internal/infra/storage/session"
	catalogService "github.com/explorio/booking-service/internal/service/catalog"
	"github.com/explorio/booking-service/internal/service/pricing"
	"github.com/explorio/booking-service/internal/service/verification"
	wizardService "github.com/explorio/booking-service/internal/service/wizard"
	confirmBookingUC "github.com/explorio/booking-service/internal/usecase/confirm_booking"
	startSessionUC "github.com/explorio/booking-service/internal/usecase/start_session"
	submitVerificationUC "github.com/explorio/booking-service/internal/usecase/submit_verification"
	"github.com/explorio/booking-service/pkg/dbmetrics"
	"github.com/explorio/booking-service/pkg/logger"
	"github.com/explorio/booking-service/pkg/metrics"
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

	log.Info("Starting Explorio booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник данных каталога: встроенные демо-данные или Postgres
	var catalogStore catalogService.Store

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			catalogStore = catalogStorage.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			catalogStore = catalogStorage.NewRepository(db)
		}

	default:
		catalogStore = catalogStorage.NewSeededMemoryStore()
		log.Info("Catalog running on built-in demo data")
	}

	// Хранилище сессий мастера (только в памяти)
	sessionStore := sessionStorage.NewStore()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogStore, log)
	pricer := pricing.NewCalculator()
	verificationGate := verification.NewGate(log)
	wizardSvc := wizardService.NewService(sessionStore, catalogSvc, pricer, log)

	// Инициализируем use cases
	startSessionUseCase := startSessionUC.NewUseCase(catalogSvc, sessionStore, pricer, log)
	submitVerificationUseCase := submitVerificationUC.NewUseCase(sessionStore, verificationGate, catalogSvc, pricer, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(sessionStore, catalogSvc, pricer, log)

	// Инициализируем handlers
	listActivities := listActivitiesHandler.NewHandler(catalogSvc, log)
	getActivity := getActivityHandler.NewHandler(catalogSvc, log)
	getProvider := getProviderHandler.NewHandler(catalogSvc, log)
	listAddons := listAddonsHandler.NewHandler(catalogSvc, log)
	listReference := listReferenceHandler.NewHandler(catalogSvc, log)

	startBooking := startBookingHandler.NewHandler(startSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	updateAddons := updateAddonsHandler.NewHandler(wizardSvc, log)
	continueSession := continueSessionHandler.NewHandler(wizardSvc, log)
	submitGuestInfo := submitGuestInfoHandler.NewHandler(wizardSvc, log)
	submitVerification := submitVerificationHandler.NewHandler(submitVerificationUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmBookingUseCase, log)
	stepBack := stepBackHandler.NewHandler(wizardSvc, log)
	recordActions := recordActionsHandler.NewHandler(wizardSvc, log)
	abandonSession := abandonSessionHandler.NewHandler(wizardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}", getActivity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}", getProvider.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons", listAddons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bundles", listReference.HandleBundles).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", listReference.HandleTimeSlots).Methods(http.MethodGet)
	api.HandleFunc("/categories", listReference.HandleCategories).Methods(http.MethodGet)
	api.HandleFunc("/cities", listReference.HandleCities).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/bookings/sessions", startBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/sessions/{sessionId}", abandonSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/sessions/{sessionId}/addons", updateAddons.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/sessions/{sessionId}/continue", continueSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}/guest-info", submitGuestInfo.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}/verification", submitVerification.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}/payment", confirmPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}/back", stepBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/sessions/{sessionId}/record/actions", recordActions.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
