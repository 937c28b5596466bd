package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	appendRowHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/append_row"
	createBookingHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/create_booking"
	exchangeCodeHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/exchange_code"
	getAuthConfigHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/get_auth_config"
	getAvailabilityHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/get_availability"
	getFinanceSummaryHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/get_finance_summary"
	getSessionHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/get_session"
	getSheetHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/get_sheet"
	updateCellHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/update_cell"
	verifyTokenHandler "github.com/mamicio/SG-StudioService/internal/api/handlers/verify_token"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/api/middleware"
	"github.com/mamicio/SG-StudioService/internal/config"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlecalendar"
	"github.com/mamicio/SG-StudioService/internal/integrations/googleidentity"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlesheets"
	authService "github.com/mamicio/SG-StudioService/internal/service/auth"
	financeService "github.com/mamicio/SG-StudioService/internal/service/finance"
	createBookingUC "github.com/mamicio/SG-StudioService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mamicio/SG-StudioService/internal/usecase/get_available_slots"
	"github.com/mamicio/SG-StudioService/pkg/autosave"
	"github.com/mamicio/SG-StudioService/pkg/logger"
	"github.com/mamicio/SG-StudioService/pkg/metrics"
	"github.com/mamicio/SG-StudioService/pkg/ratelim"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SG-StudioService...")
	log.Info("Configuration loaded from config.toml")

	// El detalle de errores internos solo sale fuera de producción
	handlers.Development = !cfg.Server.IsProduction()

	// Inicializamos métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Inicializamos los clientes de Google. Si faltan credenciales el
	// servicio arranca igual: esas rutas responden que no están disponibles.
	calendarClient, err := googlecalendar.New(ctx, cfg.Google.ServiceAccountJSON, cfg.Google.CalendarID, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar client: %v", err)
	}
	sheetsClient, err := googlesheets.New(ctx, cfg.Google.ServiceAccountJSON, log)
	if err != nil {
		log.Fatal("Failed to initialize sheets client: %v", err)
	}
	identityClient := googleidentity.New(cfg.Google.ClientID, cfg.Google.ClientSecret, log)

	// Inicializamos los servicios
	authSvc := authService.NewService(
		identityClient,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		cfg.Auth.AuthorizedEmails,
		log,
	)
	financeSvc := financeService.NewService(
		sheetsClient,
		cfg.Google.IngresosSheetID,
		cfg.Google.EgresosSheetID,
		log,
	)

	// El saver agrupa ediciones de celda y las escribe con debounce;
	// las transiciones de estado quedan en el log
	cellSaver := autosave.New(financeSvc, autosave.DefaultDebounce, func(ev autosave.Event) {
		switch ev.State {
		case autosave.StateError:
			log.Error("Autosave: cell write failed: sheet=%s, row=%d, col=%d, error=%v",
				ev.Cell.SheetType, ev.Cell.RowIndex, ev.Cell.ColIndex, ev.Err)
		case autosave.StateSaved:
			log.Info("Autosave: cell saved: sheet=%s, row=%d, col=%d",
				ev.Cell.SheetType, ev.Cell.RowIndex, ev.Cell.ColIndex)
		}
	})

	// Inicializamos los use cases
	createBookingUseCase := createBookingUC.NewUseCase(calendarClient, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(calendarClient, log)

	// Inicializamos los handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	verifyToken := verifyTokenHandler.NewHandler(authSvc, log)
	exchangeCode := exchangeCodeHandler.NewHandler(authSvc, log)
	getAuthConfig := getAuthConfigHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(log)
	getFinanceSummary := getFinanceSummaryHandler.NewHandler(financeSvc, log)
	getSheet := getSheetHandler.NewHandler(financeSvc, log)
	updateCell := updateCellHandler.NewHandler(cellSaver, log)
	appendRow := appendRowHandler.NewHandler(financeSvc, log)

	// Limita las reservas a 5 por 15 minutos por IP
	bookingLimiter := ratelim.NewBookingLimiter()

	// Configuramos el router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)

	// Metrics middleware (si las métricas están habilitadas)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (sin autenticación)
	// ============================================================

	// Liveness
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": cfg.Metrics.ServiceName,
		})
	}).Methods(http.MethodGet)

	// Flujo de login con Google
	api.HandleFunc("/auth/config", getAuthConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/verify", verifyToken.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/exchange", exchangeCode.Handle).Methods(http.MethodPost)

	// Disponibilidad de slots
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Creación de reservas (con rate limit por IP)
	api.Handle("/bookings",
		middleware.RateLimit(bookingLimiter, log)(http.HandlerFunc(createBooking.Handle)),
	).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (requieren sesión del dashboard)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// Sesión actual
	protected.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// --- Finanzas ---
	// Resumen mensual
	protected.HandleFunc("/finanzas", getFinanceSummary.Handle).Methods(http.MethodGet)

	// Hoja filtrada por período
	protected.HandleFunc("/finanzas/sheet", getSheet.Handle).Methods(http.MethodGet)

	// Edición de celda (con debounce del lado del servidor)
	protected.HandleFunc("/finanzas/cell", updateCell.Handle).Methods(http.MethodPut)

	// Fila nueva
	protected.HandleFunc("/finanzas/rows", appendRow.Handle).Methods(http.MethodPost)

	// Archivos estáticos del sitio
	if cfg.Server.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
		log.Info("Serving static files from %s", cfg.Server.StaticDir)
	}

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Creamos el servidor HTTP
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

	// Esperamos la señal de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Las ediciones de celda pendientes se escriben antes de salir
	cellSaver.Flush(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
