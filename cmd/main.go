package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyPromoHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/apply_promo"
	buildScheduleHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/build_schedule"
	getCategoryHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/get_category"
	getCenterHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/get_center"
	getInvoiceHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/get_invoice"
	getServiceHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/get_service"
	listAddonsHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/list_addons"
	listCategoriesHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/list_categories"
	listCentersHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/list_centers"
	listServicesHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/list_services"
	listTherapistsHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/list_therapists"
	reserveSlotHandler "github.com/m04kA/SPA-BookingService/internal/api/handlers/reserve_slot"
	"github.com/m04kA/SPA-BookingService/internal/api/middleware"
	"github.com/m04kA/SPA-BookingService/internal/config"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
	catalogService "github.com/m04kA/SPA-BookingService/internal/service/catalog"
	guestsService "github.com/m04kA/SPA-BookingService/internal/service/guests"
	promotionsService "github.com/m04kA/SPA-BookingService/internal/service/promotions"
	reservationsService "github.com/m04kA/SPA-BookingService/internal/service/reservations"
	buildScheduleUC "github.com/m04kA/SPA-BookingService/internal/usecase/build_schedule"
	"github.com/m04kA/SPA-BookingService/pkg/logger"
	"github.com/m04kA/SPA-BookingService/pkg/metrics"
)

func main() {
	// Подхватываем .env (если есть) до чтения конфигурации:
	// там живут ZENOTI_API_KEY и ZENOTI_API_URL
	_ = godotenv.Load()

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

	log.Info("Starting SPA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var upstreamMetrics zenotiClient.MetricsCollector

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента Zenoti API
	zenoti := zenotiClient.NewClient(zenotiClient.Config{
		BaseURL:        cfg.Zenoti.BaseURL,
		APIKey:         cfg.Zenoti.APIKey,
		Timeout:        time.Duration(cfg.Zenoti.Timeout) * time.Second,
		RateLimitRPS:   cfg.Zenoti.RateLimitRPS,
		RateLimitBurst: cfg.Zenoti.RateLimitBurst,
	}, upstreamMetrics, log)
	log.Info("Zenoti client initialized (url=%s, timeout=%ds, rate_limit=%.1f rps)",
		cfg.Zenoti.BaseURL, cfg.Zenoti.Timeout, cfg.Zenoti.RateLimitRPS)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(zenoti, log)
	guestsSvc := guestsService.NewService(zenoti, log)
	reservationsSvc := reservationsService.NewService(zenoti, log)
	promotionsSvc := promotionsService.NewService(zenoti, log)

	// Инициализируем use cases
	buildScheduleUseCase := buildScheduleUC.NewUseCase(
		guestsSvc,
		catalogSvc,
		zenoti,
		log,
		cfg.Schedule.WindowDays,
		cfg.Schedule.Concurrency,
	)

	// Инициализируем handlers
	listCenters := listCentersHandler.NewHandler(catalogSvc, log)
	getCenter := getCenterHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	getCategory := getCategoryHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listAddons := listAddonsHandler.NewHandler(catalogSvc, log)
	listTherapists := listTherapistsHandler.NewHandler(catalogSvc, log)
	buildSchedule := buildScheduleHandler.NewHandler(buildScheduleUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reservationsSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(reservationsSvc, log)
	applyPromo := applyPromoHandler.NewHandler(promotionsSvc, log)

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

	// --- Каталог ---
	api.HandleFunc("/centers", listCenters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}", getCenter.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/categories/{categoryId}", getCategory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/addons", listAddons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/therapists", listTherapists.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	api.HandleFunc("/centers/{centerId}/schedule", buildSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирование и оплата ---
	api.HandleFunc("/bookings/{bookingId}/reserve", reserveSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{invoiceId}", getInvoice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{invoiceId}/promo", applyPromo.Handle).Methods(http.MethodPost)

	// CORS для браузерных клиентов
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
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
