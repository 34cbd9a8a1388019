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

	calendarOverridesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/calendar_overrides"
	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	forceStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/force_status"
	getAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getGuestBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_guest_bookings"
	guestRulesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/guest_rules"
	paymentCallbackHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/payment_callback"
	quotePriceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/quote_price"
	recordOfflinePaymentHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/record_offline_payment"
	roomTypesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/room_types"
	transitionBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/transition_booking"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	auditRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/audit"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/calendar"
	depositPolicyRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/depositpolicy"
	guestRuleRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guestrule"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	roomTypeRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
	identityServiceClient "github.com/m04kA/SMC-HotelService/internal/integrations/identityservice"
	notifyServiceClient "github.com/m04kA/SMC-HotelService/internal/integrations/notifyservice"
	availabilityService "github.com/m04kA/SMC-HotelService/internal/service/availability"
	calendarAdminService "github.com/m04kA/SMC-HotelService/internal/service/calendaradmin"
	lifecycleService "github.com/m04kA/SMC-HotelService/internal/service/lifecycle"
	pricingService "github.com/m04kA/SMC-HotelService/internal/service/pricing"
	roomTypeAdminService "github.com/m04kA/SMC-HotelService/internal/service/roomtypeadmin"
	rulesService "github.com/m04kA/SMC-HotelService/internal/service/rules"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
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

	// Инициализируем интеграционных клиентов
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository       *bookingRepo.Repository
		paymentRepository       *paymentRepo.Repository
		auditRepository         *auditRepo.Repository
		inventoryRepository     *inventoryRepo.Repository
		calendarRepository      *calendarRepo.Repository
		depositPolicyRepository *depositPolicyRepo.Repository
		guestRuleRepository     *guestRuleRepo.Repository
		roomTypeRepository      *roomTypeRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		inventoryRepository = inventoryRepo.NewRepository(wrappedDB, cfg.Inventory.HorizonDays, log)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		depositPolicyRepository = depositPolicyRepo.NewRepository(wrappedDB)
		guestRuleRepository = guestRuleRepo.NewRepository(wrappedDB)
		roomTypeRepository = roomTypeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		inventoryRepository = inventoryRepo.NewRepository(db, cfg.Inventory.HorizonDays, log)
		calendarRepository = calendarRepo.NewRepository(db)
		depositPolicyRepository = depositPolicyRepo.NewRepository(db)
		guestRuleRepository = guestRuleRepo.NewRepository(db)
		roomTypeRepository = roomTypeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(
		roomTypeRepository,
		calendarRepository,
		depositPolicyRepository,
		log,
	)
	rulesSvc := rulesService.NewService(guestRuleRepository, auditRepository, txMgr, log)
	availabilitySvc := availabilityService.NewService(
		inventoryRepository,
		calendarRepository,
		roomTypeRepository,
		txMgr,
		log,
	)
	calendarAdminSvc := calendarAdminService.NewService(
		calendarRepository,
		auditRepository,
		txMgr,
		log,
	)
	roomTypeAdminSvc := roomTypeAdminService.NewService(
		roomTypeRepository,
		auditRepository,
		txMgr,
		log,
	)

	// Депозитные полосы должны покрывать групповой диапазон без дыр:
	// сломанная конфигурация валит старт, а не первый групповой запрос
	if err := pricingSvc.ValidateDepositBands(context.Background()); err != nil {
		log.Fatal("Invalid deposit band configuration: %v", err)
	}
	log.Info("Deposit band configuration validated")
	lifecycleSvc := lifecycleService.NewService(
		bookingRepository,
		paymentRepository,
		inventoryRepository,
		auditRepository,
		notifyClient,
		txMgr,
		&lifecycleService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		inventoryRepository,
		pricingSvc,
		rulesSvc,
		identityClient,
		auditRepository,
		notifyClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(lifecycleSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(lifecycleSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(lifecycleSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(lifecycleSvc, log)
	paymentCallback := paymentCallbackHandler.NewHandler(lifecycleSvc, log)
	recordOfflinePayment := recordOfflinePaymentHandler.NewHandler(lifecycleSvc, log)
	forceStatus := forceStatusHandler.NewHandler(lifecycleSvc, log)
	quotePrice := quotePriceHandler.NewHandler(pricingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	calendarOverrides := calendarOverridesHandler.NewHandler(calendarAdminSvc, log)
	roomTypes := roomTypesHandler.NewHandler(roomTypeAdminSvc, log)
	guestRules := guestRulesHandler.NewHandler(rulesSvc, log)

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

	// Rate limiting на все API-запросы (если включено)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Предпросмотр доступности типа номера
	api.HandleFunc("/room-types/{roomTypeId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчет цены без создания бронирования
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Webhook платежного провайдера
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Платежи по бронированию
	protected.HandleFunc("/bookings/{bookingId}/payments", getBooking.HandlePayments).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	protected.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Операционные переходы (персонал отеля) ---
	protected.HandleFunc("/bookings/{bookingId}/check-in", transitionBooking.HandleCheckIn).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-out", transitionBooking.HandleCheckOut).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/complete", transitionBooking.HandleComplete).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют административную роль)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Офлайн-платеж, принятый на стойке
	admin.HandleFunc("/bookings/{bookingId}/payments/offline", recordOfflinePayment.Handle).Methods(http.MethodPost)

	// Принудительная смена статуса
	admin.HandleFunc("/bookings/{bookingId}/force-status", forceStatus.Handle).Methods(http.MethodPost)

	// Календарные правила
	admin.HandleFunc("/calendar-overrides", calendarOverrides.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/calendar-overrides", calendarOverrides.HandleUpsert).Methods(http.MethodPut)
	admin.HandleFunc("/calendar-overrides/{overrideId}", calendarOverrides.HandleDelete).Methods(http.MethodDelete)

	// Типы номеров
	admin.HandleFunc("/room-types", roomTypes.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/room-types/{roomTypeId}", roomTypes.HandleUpdate).Methods(http.MethodPut)

	// Окна бронирования по классификации гостя
	admin.HandleFunc("/guest-booking-rules", guestRules.HandleUpsert).Methods(http.MethodPut)

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
