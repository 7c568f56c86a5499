package translate

import (
	"context"
	"errors"
)

// StubEngine is a deterministic test implementation. If Dictionary has an
// entry for the target tag and input text it is returned, otherwise the
// text is echoed back with a tag prefix.
type StubEngine struct {
	Dictionary map[string]map[string]string // [targetTag][sourceText]translatedText
	Err        error
	Calls      int
}

func (s *StubEngine) Translate(ctx context.Context, text string, sourceTag string, targetTag string) (string, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	if tagDict, ok := s.Dictionary[targetTag]; ok {
		if translated, ok := tagDict[text]; ok {
			return translated, nil
		}
	}
	return "[" + targetTag + "] " + text, nil
}

// ErrStubEngine is a ready-made failure for tests.
var ErrStubEngine = errors.New("stub engine failure")
