package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyEngine invokes a translation model served by an inference sidecar
// over HTTP. The sidecar holds the single loaded model instance; this client
// carries no protection against concurrent calls, matching the Engine
// contract.
type RestyEngine struct {
	baseURL string
	http    *resty.Client
}

func NewRestyEngine(baseURL string) *RestyEngine {
	c := resty.New().SetTimeout(120 * time.Second)
	return &RestyEngine{baseURL: strings.TrimRight(baseURL, "/"), http: c}
}

func (e *RestyEngine) Translate(ctx context.Context, text string, sourceTag string, targetTag string) (string, error) {
	body := map[string]string{
		"text":     text,
		"src_lang": sourceTag,
		"tgt_lang": targetTag,
	}

	var resp struct {
		TranslatedText string `json:"translated_text"`
	}

	r, err := e.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(e.baseURL + "/translate")
	if err != nil {
		return "", err
	}
	if r.IsError() {
		return "", fmt.Errorf("inference: %s; body: %s", r.Status(), r.String())
	}
	if resp.TranslatedText == "" {
		return "", fmt.Errorf("inference: empty result")
	}

	return resp.TranslatedText, nil
}
