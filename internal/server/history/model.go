package history

import "time"

// Record is one persisted translation. Records are immutable once created
// and owned exclusively by the user referenced by UserID.
type Record struct {
	ID             string
	UserID         string
	OriginalText   string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	CreatedAt      time.Time
}
