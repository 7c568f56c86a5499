// Package server initializes and runs the translation service.
// It wires the persistence layer, the inference and speech engines, the
// artifact store and the HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/voxlate/voxlate/internal/logging"
	"github.com/voxlate/voxlate/internal/server/audio"
	"github.com/voxlate/voxlate/internal/server/config"
	"github.com/voxlate/voxlate/internal/server/httpapi"
	"github.com/voxlate/voxlate/internal/server/shared/db"
	"github.com/voxlate/voxlate/internal/server/speech"
	"github.com/voxlate/voxlate/internal/server/translate"
	"github.com/voxlate/voxlate/internal/server/translations"
	"github.com/voxlate/voxlate/internal/server/users"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	userService        *users.Service
	translationService *translations.Service
	transcriber        *speech.Transcriber
	store              audio.Store
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := newAudioStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("audio store init error: %w", err)
	}

	us := users.NewService(manager.Users(), cfg)
	ts := translations.NewService(
		translate.NewRestyEngine(cfg.InferenceEndpoint),
		manager.History(),
		speech.NewRestySynthesizer(cfg.TTSEndpoint),
		store,
		logger,
	)
	tr := speech.NewTranscriber(speech.FFmpegDecoder{}, speech.NewRestyRecognizer(cfg.ASREndpoint))

	return &App{
		config:             cfg,
		logger:             logger,
		userService:        us,
		translationService: ts,
		transcriber:        tr,
		store:              store,
	}, nil
}

func newAudioStore(ctx context.Context, cfg *config.Config) (audio.Store, error) {
	switch cfg.AudioBackend {
	case config.AudioBackendS3:
		return audio.NewS3Store(ctx, cfg)
	case config.AudioBackendFS:
		return audio.NewFSStore(cfg.AudioDir)
	default:
		return nil, fmt.Errorf("unknown audio backend: %s", cfg.AudioBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.translationService,
		app.transcriber,
		app.store,
		app.config.SecretKey,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
