package domain

// InsightStatus colors the single observation the insight engine surfaces.
type InsightStatus string

const (
	InsightGood    InsightStatus = "good"
	InsightNeutral InsightStatus = "neutral"
	InsightWarning InsightStatus = "warning"
)

// Insight is one human-readable observation derived from the user's data,
// or a rotating daily tip when no rule fires.
type Insight struct {
	Text   string        `json:"text"`
	Status InsightStatus `json:"status"`
}
