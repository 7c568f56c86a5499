package speech

import "context"

// StubSynthesizer is a deterministic test implementation returning fixed
// audio bytes.
type StubSynthesizer struct {
	Audio []byte
	Err   error
	Calls int

	// LastText and LastLang record the most recent invocation.
	LastText string
	LastLang string
}

func (s *StubSynthesizer) Synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	s.Calls++
	s.LastText = text
	s.LastLang = lang
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Audio != nil {
		return s.Audio, nil
	}
	return []byte("audio:" + text), nil
}

// StubRecognizer returns a fixed transcription.
type StubRecognizer struct {
	Text string
	Err  error
}

func (s *StubRecognizer) Recognize(ctx context.Context, wav []byte) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

// StubDecoder passes the raw bytes through unchanged, or fails.
type StubDecoder struct {
	Err error
}

func (s StubDecoder) Decode(ctx context.Context, raw []byte) ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return raw, nil
}
