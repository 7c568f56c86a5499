// Package translations implements the authenticated translation pipeline:
// validate, infer, persist, synthesize. The pipeline is strictly sequential;
// each step fails with its own error kind and already-committed steps are
// never rolled back.
package translations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxlate/voxlate/internal/common"
	"github.com/voxlate/voxlate/internal/logging"
	"github.com/voxlate/voxlate/internal/server/audio"
	"github.com/voxlate/voxlate/internal/server/history"
	"github.com/voxlate/voxlate/internal/server/speech"
	"github.com/voxlate/voxlate/internal/server/translate"
)

// Result is the composed outcome of a successful pipeline run. AudioFile
// names the stored artifact; the transport layer turns it into a URL.
type Result struct {
	TranslatedText string
	AudioFile      string
}

type Service struct {
	engine  translate.Engine
	history history.Repository
	synth   speech.Synthesizer
	store   audio.Store
	logger  logging.Logger

	// mu serializes access to the single loaded model instance. Only the
	// inference step takes it, so login, history reads and audio serving
	// are never blocked behind a slow translation.
	mu sync.Mutex
}

func NewService(engine translate.Engine, historyRepo history.Repository, synth speech.Synthesizer, store audio.Store, logger logging.Logger) *Service {
	return &Service{
		engine:  engine,
		history: historyRepo,
		synth:   synth,
		store:   store,
		logger:  logger.With("module", "translations"),
	}
}

// artifactName builds a filename unique across concurrent requests.
func artifactName() string {
	return fmt.Sprintf("out_%d_%s.mp3", time.Now().UnixNano(), uuid.NewString()[:8])
}

// Translate runs the pipeline for an already-resolved identity.
//
// Steps and their failure kinds:
//  1. validate: empty text -> ErrorValidation; unknown language codes
//     degrade to the default tag instead of failing.
//  2. infer: ErrorInference. No side effects exist yet at this point.
//  3. persist: ErrorPersistence. A successful inference that fails to
//     persist is reported as an error, not silently dropped.
//  4. synthesize + store: ErrorSynthesis. The committed record survives;
//     history and audio may diverge only on this failure path.
func (s *Service) Translate(ctx context.Context, userID string, text string, sourceLang string, targetLang string) (*Result, error) {

	if text == "" {
		return nil, common.ErrorValidation
	}

	srcTag := translate.Tag(sourceLang)
	tgtTag := translate.Tag(targetLang)

	s.mu.Lock()
	translated, err := s.engine.Translate(ctx, text, srcTag, tgtTag)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInference, err)
	}

	record := &history.Record{
		UserID:         userID,
		OriginalText:   text,
		TranslatedText: translated,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}

	if _, err := s.history.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	// The artifact is synthesized from the exact text just persisted.
	audioBytes, err := s.synth.Synthesize(ctx, translated, targetLang)
	if err != nil {
		s.logger.Warn(ctx, "synthesis failed after record commit", "record_id", record.ID)
		return nil, fmt.Errorf("%w: %v", common.ErrorSynthesis, err)
	}

	filename := artifactName()
	if err := s.store.Put(ctx, filename, audioBytes); err != nil {
		s.logger.Warn(ctx, "artifact write failed after record commit", "record_id", record.ID)
		return nil, fmt.Errorf("%w: %v", common.ErrorSynthesis, err)
	}

	return &Result{TranslatedText: translated, AudioFile: filename}, nil
}

// History returns the caller's own records, most recent first.
func (s *Service) History(ctx context.Context, userID string) ([]*history.Record, error) {
	records, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return records, nil
}
