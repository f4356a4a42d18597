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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	cancelOrderHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/create_order"
	exportOwnerOrdersHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/export_owner_orders"
	getCustomerOrdersHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_customer_orders"
	getOrderHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_order"
	getOwnerOrdersHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_owner_orders"
	getPreorderOptionsHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_preorder_options"
	getPreorderScheduleHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_preorder_schedule"
	updateOrderStatusHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/update_order_status"
	updatePreorderScheduleHandler "github.com/m04kA/SMC-OrderingService/internal/api/handlers/update_preorder_schedule"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/config"
	scheduleCache "github.com/m04kA/SMC-OrderingService/internal/infra/cache/schedule"
	"github.com/m04kA/SMC-OrderingService/internal/infra/export"
	orderRepo "github.com/m04kA/SMC-OrderingService/internal/infra/storage/order"
	scheduleRepo "github.com/m04kA/SMC-OrderingService/internal/infra/storage/schedule"
	ordersService "github.com/m04kA/SMC-OrderingService/internal/service/orders"
	scheduleService "github.com/m04kA/SMC-OrderingService/internal/service/schedule"
	createOrderUC "github.com/m04kA/SMC-OrderingService/internal/usecase/create_order"
	getPreorderOptionsUC "github.com/m04kA/SMC-OrderingService/internal/usecase/get_preorder_options"
	"github.com/m04kA/SMC-OrderingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OrderingService/pkg/logger"
	"github.com/m04kA/SMC-OrderingService/pkg/metrics"
	"github.com/m04kA/SMC-OrderingService/pkg/txmanager"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitMaxIdle         = 10 * time.Minute
	redisPingTimeout         = 3 * time.Second
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

	log.Info("Starting SMC-OrderingService...")
	log.Info("Configuration loaded from config.toml")

	loc, err := time.LoadLocation(cfg.Restaurant.Timezone)
	if err != nil {
		log.Fatal("Invalid restaurant timezone %q: %v", cfg.Restaurant.Timezone, err)
	}

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех потребителей
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopBackgroundCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кеш расписания (необязателен: без Redis сервис читает расписание из БД)
	var schedCache scheduleService.ScheduleCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis is unavailable at %s, schedule cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			schedCache = scheduleCache.NewCache(redisClient, time.Duration(cfg.Redis.ScheduleTTL)*time.Second)
			log.Info("Schedule cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.ScheduleTTL)
		}
	}

	// Инициализируем репозитории
	orderRepository := orderRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		schedCache,
		txMgr,
		cfg.Restaurant,
		metricsCollector,
		log,
	)
	ordersSvc := ordersService.NewService(
		orderRepository,
		cfg.Restaurant,
		export.NewOrdersWriter(loc),
		loc,
		log,
	)

	// Инициализируем use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		scheduleSvc,
		metricsCollector,
		loc,
		log,
	)
	getPreorderOptionsUseCase := getPreorderOptionsUC.NewUseCase(
		scheduleSvc,
		loc,
		log,
	)

	// Инициализируем handlers
	getPreorderSchedule := getPreorderScheduleHandler.NewHandler(scheduleSvc, log)
	updatePreorderSchedule := updatePreorderScheduleHandler.NewHandler(scheduleSvc, log)
	getPreorderOptions := getPreorderOptionsHandler.NewHandler(getPreorderOptionsUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(ordersSvc, log)
	getCustomerOrders := getCustomerOrdersHandler.NewHandler(ordersSvc, log)
	getOwnerOrders := getOwnerOrdersHandler.NewHandler(ordersSvc, log)
	exportOwnerOrders := exportOwnerOrdersHandler.NewHandler(ordersSvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(ordersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		go limiter.RunCleanup(rateLimitCleanupInterval, rateLimitMaxIdle, stopBackgroundCh)
		api.Use(limiter.Limit)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Опубликованное расписание предзаказов
	api.HandleFunc("/preorder/schedule", getPreorderSchedule.Handle).Methods(http.MethodGet)

	// Варианты 12-часового пикера для выбранной даты
	api.HandleFunc("/preorder/options", getPreorderOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы клиента ---
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/orders", getCustomerOrders.Handle).Methods(http.MethodGet)

	// --- Владелец ресторана ---
	protected.HandleFunc("/preorder/schedule", updatePreorderSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/owner/orders", getOwnerOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owner/orders/export", exportOwnerOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owner/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader},
		ExposedHeaders: []string{"Content-Disposition"},
	}).Handler(r)

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

	// Останавливаем сбор метрик пула и очистку rate limiter
	close(stopBackgroundCh)

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
