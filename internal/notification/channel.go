// Package notification is the external collaborator boundary: delivery
// is best-effort and its result is only ever reported, never allowed to
// fail or reverse the operation that triggered it.
package notification

import (
	"context"
	"strings"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

// Message is one customer- or seller-facing notification. Recipient
// fields left empty mean the contact handle is unknown for that channel.
type Message struct {
	Subject  string
	Body     string
	Email    string
	WhatsApp string
	MediaURL string
}

// Channel is one delivery transport. Implementations never return an
// error: every failure mode collapses into an Outcome tag.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) domain.Outcome
}

// Disabled stands in for a channel whose configuration is absent, so
// callers never branch on nil.
type Disabled struct {
	name string
}

func NewDisabled(name string) Disabled {
	return Disabled{name: name}
}

func (d Disabled) Name() string { return d.name }

func (d Disabled) Send(context.Context, Message) domain.Outcome {
	return domain.OutcomeNotConfigured
}

// normalizeWhatsApp forces the twilio channel prefix onto a bare handle.
func normalizeWhatsApp(handle string) string {
	if handle == "" {
		return ""
	}
	if strings.HasPrefix(handle, "whatsapp:") {
		return handle
	}
	return "whatsapp:" + handle
}
