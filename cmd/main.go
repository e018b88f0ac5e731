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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/auth"
	cancelBookingHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/delete_booking"
	fieldsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/fields"
	getAvailableFieldsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/get_available_fields"
	getBookingHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/get_booking"
	getFieldBookingsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/get_field_bookings"
	getUserBookingsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/list_bookings"
	paymentMethodsHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/payment_methods"
	updateBookingStatusHandler "github.com/fieldbook/FieldBooking-Service/internal/api/handlers/update_booking_status"
	"github.com/fieldbook/FieldBooking-Service/internal/api/middleware"
	"github.com/fieldbook/FieldBooking-Service/internal/config"
	bookingRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/booking"
	fieldRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/field"
	userRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/user"
	authService "github.com/fieldbook/FieldBooking-Service/internal/service/auth"
	availabilityService "github.com/fieldbook/FieldBooking-Service/internal/service/availability"
	bookingsService "github.com/fieldbook/FieldBooking-Service/internal/service/bookings"
	fieldsService "github.com/fieldbook/FieldBooking-Service/internal/service/fields"
	notifyService "github.com/fieldbook/FieldBooking-Service/internal/service/notify"
	createBookingUC "github.com/fieldbook/FieldBooking-Service/internal/usecase/create_booking"
	getAvailableFieldsUC "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
	"github.com/fieldbook/FieldBooking-Service/pkg/dbmetrics"
	"github.com/fieldbook/FieldBooking-Service/pkg/logger"
	"github.com/fieldbook/FieldBooking-Service/pkg/metrics"
	"github.com/fieldbook/FieldBooking-Service/pkg/txmanager"
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

	log.Info("Starting FieldBooking-Service...")
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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		fieldRepository   *fieldRepo.Repository
		userRepository    *userRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewWithBeginner(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		fieldRepository = fieldRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notifySvc := notifyService.NewService(
		cfg.Email.Enabled,
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		log,
	)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	availabilitySvc := availabilityService.NewService(bookingRepository, fieldRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, notifySvc, log)
	fieldSvc := fieldsService.NewService(fieldRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		fieldRepository,
		userRepository,
		txMgr,
		notifySvc,
		log,
	)
	getAvailableFieldsUseCase := getAvailableFieldsUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	auth := authHandler.NewHandler(authSvc, log)
	fields := fieldsHandler.NewHandler(fieldSvc, log)
	paymentMethods := paymentMethodsHandler.NewHandler(log)
	getAvailableFields := getAvailableFieldsHandler.NewHandler(getAvailableFieldsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)

	// Каталог полей и подбор свободных на слот.
	// /fields/available регистрируется раньше /fields/{fieldId}
	api.HandleFunc("/fields", fields.List).Methods(http.MethodGet)
	api.HandleFunc("/fields/available", getAvailableFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}", fields.Get).Methods(http.MethodGet)

	api.HandleFunc("/payment-methods", paymentMethods.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/me", auth.Me).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен с правами администратора)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(authSvc, log), middleware.RequireAdmin(log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/fields", fields.Create).Methods(http.MethodPost)
	admin.HandleFunc("/fields/{fieldId}", fields.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/fields/{fieldId}", fields.Delete).Methods(http.MethodDelete)

	// CORS для браузерных клиентов
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
