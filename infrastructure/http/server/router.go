package server

import (
	"bufio"
	"chat-room/auth"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether the process can serve requests.
type HealthCheck func() error

func NewRouter(
	log *slog.Logger,
	chatHandler *ChatHandler,
	wsHandler *WSHandler,
	tokens *auth.TokenManager,
	gatherer prometheus.Gatherer,
	health HealthCheck,
) *mux.Router {
	authenticated := auth.Middleware(tokens, errorWriter(log))

	r := mux.NewRouter()
	r.Use(logging(log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := health(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, StatusResponse{Message: "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.Handle("/ws", authenticated(wsHandler)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authenticated)
	api.HandleFunc("/chat-messages", chatHandler.PostMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat-messages/{chatRoomId}", chatHandler.GetMessages).Methods(http.MethodGet)
	api.HandleFunc("/chat-messages/{chatRoomId}", chatHandler.DeleteRoom).Methods(http.MethodDelete)
	return r
}

func logging(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Debug("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"latency", time.Since(start))
		})
	}
}

// statusRecorder keeps Hijack available for the websocket upgrade.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, stderrors.New("response writer does not implement http.Hijacker")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}
