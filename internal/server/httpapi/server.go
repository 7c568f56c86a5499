// Package httpapi exposes the service over HTTP. It owns request decoding,
// bearer-token authentication and error-to-status mapping; all domain logic
// lives in the services it delegates to.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/voxlate/voxlate/internal/logging"
	"github.com/voxlate/voxlate/internal/server/audio"
	"github.com/voxlate/voxlate/internal/server/speech"
	"github.com/voxlate/voxlate/internal/server/translations"
	"github.com/voxlate/voxlate/internal/server/users"
)

type Server struct {
	address      string
	logger       logging.Logger
	users        *users.Service
	translations *translations.Service
	transcriber  *speech.Transcriber
	store        audio.Store
	jwtSecret    []byte
}

func NewServer(address string, l logging.Logger, us *users.Service, ts *translations.Service, tr *speech.Transcriber, store audio.Store, secretKey string) *Server {
	return &Server{
		address:      address,
		logger:       l.With("module", "http_server"),
		users:        us,
		translations: ts,
		transcriber:  tr,
		store:        store,
		jwtSecret:    []byte(secretKey),
	}
}

// Handler builds the route table. Identity routes and audio serving are
// public; history and translation require a resolved identity.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.Handle("GET /history", s.requireAuth(http.HandlerFunc(s.handleHistory)))
	mux.Handle("POST /translate", s.requireAuth(http.HandlerFunc(s.handleTranslate)))
	mux.HandleFunc("POST /upload-audio", s.handleUploadAudio)
	mux.HandleFunc("GET /audio/{filename}", s.handleAudio)
	mux.HandleFunc("GET /ping", s.handlePing)

	return s.recoverMiddleware(s.corsMiddleware(s.loggingMiddleware(mux)))
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err.Error())
			_ = srv.Close()
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
