package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/voxlate/voxlate/internal/common"
)

// Decoder converts an arbitrary uploaded audio container into a normalized
// mono 16kHz WAV waveform.
type Decoder interface {
	Decode(ctx context.Context, raw []byte) ([]byte, error)
}

// FFmpegDecoder shells out to ffmpeg for container decoding. ffmpeg reads
// the upload from stdin and writes the normalized waveform to stdout, so no
// temp files are involved.
type FFmpegDecoder struct{}

func (d FFmpegDecoder) Decode(ctx context.Context, raw []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", "pipe:0",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		"pipe:1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(raw)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %v: %s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}

// Transcriber composes container decoding with the recognition engine.
type Transcriber struct {
	decoder    Decoder
	recognizer Recognizer
}

func NewTranscriber(decoder Decoder, recognizer Recognizer) *Transcriber {
	return &Transcriber{decoder: decoder, recognizer: recognizer}
}

// TranscribeUpload decodes the uploaded bytes and runs recognition.
// Undecodable uploads yield common.ErrorAudioDecode.
func (t *Transcriber) TranscribeUpload(ctx context.Context, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", common.ErrorAudioDecode
	}

	wav, err := t.decoder.Decode(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorAudioDecode, err)
	}

	text, err := t.recognizer.Recognize(ctx, wav)
	if err != nil {
		return "", err
	}

	return text, nil
}
