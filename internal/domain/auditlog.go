package domain

import "time"

// AuditLog is an append-only record of an administrative state change.
type AuditLog struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AuditSellerApproved   = "seller.approved"
	AuditSellerSuspended  = "seller.suspended"
	AuditSellerReinstated = "seller.reinstated"
	AuditSellerLimitSet   = "seller.limit_set"
	AuditSellerDeleted    = "seller.deleted"
	AuditEventCreated     = "event.created"
	AuditEventUpdated     = "event.updated"
	AuditEventActivated   = "event.activated"
	AuditEventDeactivated = "event.deactivated"
	AuditEventDeleted     = "event.deleted"
)
