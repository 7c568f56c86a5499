// Package speech wraps the text-to-speech and speech-to-text engines behind
// small adapter interfaces. Both are pure stateless function boundaries.
package speech

import "context"

// Synthesizer converts text to speech audio for a public language code.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang string) ([]byte, error)
}

// Recognizer transcribes a normalized mono 16kHz WAV waveform to text.
type Recognizer interface {
	Recognize(ctx context.Context, wav []byte) (string, error)
}
