package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/eventproducers"
	"github.com/jiaming2012/options-viz/src/eventproducers/optionsapi"
	"github.com/jiaming2012/options-viz/src/eventservices"
	"github.com/jiaming2012/options-viz/src/telemetry"
	"github.com/jiaming2012/options-viz/src/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	run()
}

func setupRouter(config *eventmodels.ServerConfigYAML, service optionsapi.OptionsChainFetcher) http.Handler {
	router := mux.NewRouter()

	eventproducers.UseMiddleware(router)
	eventproducers.SetupRootHandler(router)

	executor := optionsapi.NewReadOptionsChainRequestExecutor(service, config.DefaultExpirations)
	optionsapi.SetupHandler(router.PathPrefix("/options").Subrouter(), executor)

	handler := eventproducers.NewCORSHandler(config.CORS, router)

	// Add HTTP instrumentation for the whole server.
	return otelhttp.NewHandler(handler, "/")
}

func run() {
	goEnv := utils.GetEnvOrDefault("GO_ENV", "development")
	envDir := utils.GetEnvOrDefault("ENV_DIR", ".")

	if err := utils.InitEnvironmentVariables(envDir, goEnv); err != nil {
		log.Panic(err)
	}

	if err := telemetry.SetupLogging(os.Getenv("LOG_LEVEL"), goEnv == "production"); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up OpenTelemetry.
	if _, err := utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); err == nil {
		otelShutdown, err := telemetry.SetupOTelSDK(ctx, eventproducers.ServiceName)
		if err != nil {
			log.Fatalf("failed to setup otel sdk: %v", err)
		}

		// Handle shutdown properly so nothing leaks.
		defer func() {
			if err := otelShutdown(context.Background()); err != nil {
				log.Errorf("failed to shutdown otel sdk: %v", err)
			}
		}()
	}

	configPath := utils.GetEnvOrDefault("CONFIG_FILE", "config.yaml")

	config, err := eventmodels.LoadServerConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if port, err := utils.GetEnv("PORT"); err == nil {
		config.Port = port
	}

	provider, err := eventservices.NewMarketDataProvider(config)
	if err != nil {
		log.Fatalf("failed to create market data provider: %v", err)
	}

	service := eventservices.NewOptionsChainServiceFromConfig(config, provider)

	log.Infof("Main: using %s market data, %d default expirations", config.Upstream.Provider, config.DefaultExpirations)

	srv := &http.Server{
		Handler:      setupRouter(config, service),
		Addr:         fmt.Sprintf(":%s", config.Port),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start web server
	go func() {
		log.Infof("listening on :%s", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Main: server shutdown: %v", err)
	}

	cancel()

	log.Info("Main: gracefully stopped!")
}
