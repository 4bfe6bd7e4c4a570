package notify

import "fmt"

// Ack is the delivery confirmation returned by the notification endpoint.
type Ack struct {
	MessageID int64
}

// SubmitError is a failed delivery. The raw response detail is kept so the
// caller can surface an actionable message.
type SubmitError struct {
	StatusCode int
	Detail     string
}

func (e *SubmitError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("order submission failed (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("order submission failed (status %d)", e.StatusCode)
}
