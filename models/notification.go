package models

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is the single transient user-facing message. Visible is false
// only on the hide transition broadcast to listeners.
type Notification struct {
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Visible  bool          `json:"visible"`
	Duration time.Duration `json:"duration"`
}
