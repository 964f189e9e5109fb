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

	cancelLessonHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/cancel_lesson"
	createAvailabilityHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/create_availability"
	createLessonHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/create_lesson"
	deleteAvailabilityHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/delete_availability"
	getAvailableSlotsHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/get_available_slots"
	getCoachAvailabilitiesHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/get_coach_availabilities"
	getLessonHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/get_lesson"
	getUserLessonsHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/get_user_lessons"
	rescheduleLessonHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/reschedule_lesson"
	updateAvailabilityHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/update_availability"
	updateLessonStatusHandler "github.com/m04kA/GCA-LessonService/internal/api/handlers/update_lesson_status"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	"github.com/m04kA/GCA-LessonService/internal/app"
	"github.com/m04kA/GCA-LessonService/internal/config"
	availabilityRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/availability"
	lessonRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/lesson"
	profileServiceClient "github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
	availabilityService "github.com/m04kA/GCA-LessonService/internal/service/availability"
	lessonsService "github.com/m04kA/GCA-LessonService/internal/service/lessons"
	createLessonUC "github.com/m04kA/GCA-LessonService/internal/usecase/create_lesson"
	getAvailableSlotsUC "github.com/m04kA/GCA-LessonService/internal/usecase/get_available_slots"
	rescheduleLessonUC "github.com/m04kA/GCA-LessonService/internal/usecase/reschedule_lesson"
	"github.com/m04kA/GCA-LessonService/pkg/dbmetrics"
	"github.com/m04kA/GCA-LessonService/pkg/logger"
	"github.com/m04kA/GCA-LessonService/pkg/metrics"
	"github.com/m04kA/GCA-LessonService/pkg/simpletxmanager"
	"github.com/m04kA/GCA-LessonService/pkg/txmanager"
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

	log.Info("Starting GCA-LessonService...")
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

	// Применяем миграции (если указана директория)
	if cfg.Database.MigrationsDir != "" {
		migrator, err := app.NewMigrator(db, cfg.Database.MigrationsDir)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsDir)
	}

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("ProfileService client initialized (url=%s, timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		lessonRepository *lessonRepo.Repository
		windowRepository *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		lessonRepository = lessonRepo.NewRepository(wrappedDB)
		windowRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		lessonRepository = lessonRepo.NewRepository(db)
		windowRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	lessonSvc := lessonsService.NewService(
		lessonRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		windowRepository,
		profileClient,
		log,
	)

	// Инициализируем use cases
	createLessonUseCase := createLessonUC.NewUseCase(
		lessonRepository,
		profileClient,
		txMgr,
		log,
	)
	rescheduleLessonUseCase := rescheduleLessonUC.NewUseCase(
		lessonRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		windowRepository,
		lessonRepository,
		profileClient,
		log,
	)

	// Инициализируем handlers
	createLesson := createLessonHandler.NewHandler(createLessonUseCase, log)
	rescheduleLesson := rescheduleLessonHandler.NewHandler(rescheduleLessonUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getLesson := getLessonHandler.NewHandler(lessonSvc, log)
	cancelLesson := cancelLessonHandler.NewHandler(lessonSvc, log)
	updateLessonStatus := updateLessonStatusHandler.NewHandler(lessonSvc, log)
	getUserLessons := getUserLessonsHandler.NewHandler(lessonSvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	getCoachAvailabilities := getCoachAvailabilitiesHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается request id
	r.Use(middleware.RequestID)

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

	// Получение доступных слотов тренера на дату
	api.HandleFunc("/coaches/{coachId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание (окна доступности) тренера
	api.HandleFunc("/coaches/{coachId}/availabilities",
		getCoachAvailabilities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Уроки ---
	// Создание урока
	protected.HandleFunc("/lessons", createLesson.Handle).Methods(http.MethodPost)

	// Получение урока по ID
	protected.HandleFunc("/lessons/{lessonId}", getLesson.Handle).Methods(http.MethodGet)

	// Перенос урока
	protected.HandleFunc("/lessons/{lessonId}/reschedule", rescheduleLesson.Handle).Methods(http.MethodPatch)

	// Отмена урока
	protected.HandleFunc("/lessons/{lessonId}/cancel", cancelLesson.Handle).Methods(http.MethodPatch)

	// Смена статуса урока (только тренер)
	protected.HandleFunc("/lessons/{lessonId}/status", updateLessonStatus.Handle).Methods(http.MethodPatch)

	// История уроков пользователя
	protected.HandleFunc("/users/{userId}/lessons", getUserLessons.Handle).Methods(http.MethodGet)

	// --- Окна доступности (для тренеров) ---
	// Создание окна доступности
	protected.HandleFunc("/availabilities", createAvailability.Handle).Methods(http.MethodPost)

	// Обновление окна доступности
	protected.HandleFunc("/availabilities/{availabilityId}", updateAvailability.Handle).Methods(http.MethodPut)

	// Удаление окна доступности
	protected.HandleFunc("/availabilities/{availabilityId}", deleteAvailability.Handle).Methods(http.MethodDelete)

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
