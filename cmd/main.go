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
	"github.com/rs/cors"

	createReservationHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/delete_reservation"
	getAdminReservationsHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/get_admin_reservations"
	getBusinessHoursHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/get_business_hours"
	getCalendarHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/get_calendar"
	getDayScheduleHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/get_day_schedule"
	getProfileHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/get_profile"
	loginHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/login"
	signupHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/signup"
	toggleCheckInHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/toggle_check_in"
	updateBusinessHoursHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/update_business_hours"
	validateReservationHandler "github.com/strikearena/SA-ReservationService/internal/api/handlers/validate_reservation"
	"github.com/strikearena/SA-ReservationService/internal/api/middleware"
	"github.com/strikearena/SA-ReservationService/internal/config"
	hoursRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/hours"
	profileRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/profile"
	reservationRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/reservation"
	userRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/user"
	authService "github.com/strikearena/SA-ReservationService/internal/service/auth"
	hoursService "github.com/strikearena/SA-ReservationService/internal/service/hours"
	profileService "github.com/strikearena/SA-ReservationService/internal/service/profile"
	reservationsService "github.com/strikearena/SA-ReservationService/internal/service/reservations"
	createReservationUC "github.com/strikearena/SA-ReservationService/internal/usecase/create_reservation"
	getCalendarUC "github.com/strikearena/SA-ReservationService/internal/usecase/get_calendar"
	validateReservationUC "github.com/strikearena/SA-ReservationService/internal/usecase/validate_reservation"
	"github.com/strikearena/SA-ReservationService/pkg/authtoken"
	"github.com/strikearena/SA-ReservationService/pkg/dbmetrics"
	"github.com/strikearena/SA-ReservationService/pkg/logger"
	"github.com/strikearena/SA-ReservationService/pkg/metrics"
	"github.com/strikearena/SA-ReservationService/pkg/simpletxmanager"
	"github.com/strikearena/SA-ReservationService/pkg/txmanager"
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

	log.Info("Starting SA-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopCh := make(chan struct{})

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

	// Менеджер JWT токенов
	tokenManager := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		profileRepository     *profileRepo.Repository
		hoursRepository       *hoursRepo.Repository
		userRepository        *userRepo.Repository
		txMgr                 createReservationUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, tokenManager, log)
	profileSvc := profileService.NewService(profileRepository, log)
	hoursSvc := hoursService.NewService(hoursRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	validateReservationUseCase := validateReservationUC.NewUseCase(reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		profileRepository,
		txMgr,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	signup := signupHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(reservationsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	validateReservation := validateReservationHandler.NewHandler(validateReservationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAdminReservations := getAdminReservationsHandler.NewHandler(reservationsSvc, log)
	toggleCheckIn := toggleCheckInHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Per-IP rate limiter (если включен)
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log, stopCh)
		r.Use(rateLimiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Календарь загруженности на месяц
	api.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", getCalendar.Handle).Methods(http.MethodGet)

	// Расписание одного дня по сессиям
	api.HandleFunc("/calendar/days/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// Часы работы площадки
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// Профиль для префилла формы бронирования
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)

	// Мастер бронирования: проверка и подтверждение
	protected.HandleFunc("/reservations/validate", validateReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokenManager, log))
	admin.Use(middleware.RequireAdmin(log))

	// Список бронирований с поиском и итогами
	admin.HandleFunc("/reservations", getAdminReservations.Handle).Methods(http.MethodGet)

	// Чек-ин команды на месте
	admin.HandleFunc("/reservations/{id}/check-in", toggleCheckIn.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Изменение часов работы
	admin.HandleFunc("/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	// CORS для браузерного фронтенда
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsWrapper.Handler(r),
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

	// Останавливаем фоновые горутины (метрики пула, чистка rate limiter)
	close(stopCh)

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
