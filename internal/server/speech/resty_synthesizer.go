package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestySynthesizer invokes a TTS engine over HTTP and returns the generated
// audio bytes (mp3).
type RestySynthesizer struct {
	baseURL string
	http    *resty.Client
}

func NewRestySynthesizer(baseURL string) *RestySynthesizer {
	c := resty.New().SetTimeout(60 * time.Second)
	return &RestySynthesizer{baseURL: strings.TrimRight(baseURL, "/"), http: c}
}

func (s *RestySynthesizer) Synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	body := map[string]string{
		"text": text,
		"lang": lang,
	}

	r, err := s.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.baseURL + "/synthesize")
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, fmt.Errorf("synthesize: %s; body: %s", r.Status(), r.String())
	}

	audio := r.Body()
	if len(audio) == 0 {
		return nil, fmt.Errorf("synthesize: empty audio")
	}

	return audio, nil
}
