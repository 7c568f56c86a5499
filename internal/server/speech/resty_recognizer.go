package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyRecognizer posts a WAV waveform to a speech recognition engine and
// returns the transcribed text.
type RestyRecognizer struct {
	baseURL string
	http    *resty.Client
}

func NewRestyRecognizer(baseURL string) *RestyRecognizer {
	c := resty.New().SetTimeout(60 * time.Second)
	return &RestyRecognizer{baseURL: strings.TrimRight(baseURL, "/"), http: c}
}

func (r *RestyRecognizer) Recognize(ctx context.Context, wav []byte) (string, error) {
	var resp struct {
		Text string `json:"text"`
	}

	res, err := r.http.R().SetContext(ctx).
		SetHeader("Content-Type", "audio/wav").
		SetBody(wav).
		SetResult(&resp).
		Post(r.baseURL + "/recognize")
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("recognize: %s; body: %s", res.Status(), res.String())
	}

	return resp.Text, nil
}
