package domain

import "fmt"

// Outcome tags the result of one delivery attempt on one channel.
// Failures are informational: they never fail the operation that
// triggered the notification.
type Outcome string

const (
	OutcomeSent           Outcome = "sent"
	OutcomeNotConfigured  Outcome = "not_configured"
	OutcomeMissingContact Outcome = "missing_contact"
	OutcomeSkipped        Outcome = "skipped"
)

func OutcomeFailed(reason error) Outcome {
	return Outcome(fmt.Sprintf("failed: %s", reason))
}

// Report collects per-channel outcomes for a single dispatch.
type Report struct {
	Email    Outcome `json:"email"`
	WhatsApp Outcome `json:"whatsapp"`
}
