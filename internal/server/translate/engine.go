// Package translate wraps the neural translation model behind an Engine
// interface and maps public language codes to the model's internal tags.
package translate

import "context"

// Engine converts text between languages. Implementations wrap exactly one
// loaded model instance and are NOT safe for concurrent invocation; callers
// must serialize Translate calls (the orchestrator holds a mutex around the
// inference step).
type Engine interface {
	Translate(ctx context.Context, text string, sourceTag string, targetTag string) (string, error)
}

// DefaultTag is the internal tag unrecognized language codes degrade to.
const DefaultTag = "en_XX"

// langTags maps public language codes to the model's internal tags.
var langTags = map[string]string{
	"en": "en_XX", // English
	"fr": "fr_XX", // French
	"es": "es_XX", // Spanish
	"de": "de_DE", // German
	"hi": "hi_IN", // Hindi
	"zh": "zh_CN", // Chinese
	"ar": "ar_AR", // Arabic
	"ru": "ru_RU", // Russian
	"ja": "ja_XX", // Japanese
	"it": "it_IT", // Italian
	"pt": "pt_XX", // Portuguese
	"ko": "ko_KR", // Korean
}

// Tag resolves a public language code to its internal tag. Unknown codes
// fall back to DefaultTag rather than failing the request.
func Tag(code string) string {
	if tag, ok := langTags[code]; ok {
		return tag
	}
	return DefaultTag
}
