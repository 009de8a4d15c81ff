package eventproducers

import (
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware propagates an incoming X-Request-ID or mints a new one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}

		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		fields := log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
			"request_id": r.Header.Get(RequestIDHeader),
		}

		if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
			fields["trace_id"] = sc.TraceID().String()
		}

		log.WithContext(r.Context()).WithFields(fields).Info("request")
	})
}

// NewCORSHandler wraps handler with the configured CORS policy. A wildcard
// origin combined with credentials echoes the request origin back.
func NewCORSHandler(config eventmodels.CORSConfigYAML, handler http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: config.AllowCredentials,
	}

	if config.AllowCredentials && slices.Contains(config.AllowedOrigins, "*") {
		options.AllowedOrigins = nil
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}

	c := cors.New(options)

	return c.Handler(handler)
}

func UseMiddleware(router *mux.Router) {
	router.Use(RequestIDMiddleware, LoggingMiddleware)
}
