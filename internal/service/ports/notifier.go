package ports

import (
	"context"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

// Notifier is the external collaborator boundary. Delivery is
// best-effort: the report is surfaced for observability and never
// fails the operation that triggered it.
type Notifier interface {
	NotifyApproval(ctx context.Context, seller *domain.User) domain.Report
	NotifyTicketIssued(ctx context.Context, ticket *domain.Ticket) domain.Report
}
