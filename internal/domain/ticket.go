package domain

import "time"

type TicketStatus string

const (
	TicketStatusUnused TicketStatus = "unused"
	TicketStatusUsed   TicketStatus = "used"
)

// Ticket carries a denormalized snapshot of the event fields taken at
// issuance time, so later event edits or deletion never corrupt the
// ticket as admitted at the door.
type Ticket struct {
	ID               string       `json:"id"`
	EventID          string       `json:"event_id"`
	EventName        string       `json:"event_name"`
	EventDate        string       `json:"event_date"`
	EventTime        string       `json:"event_time"`
	EventVenue       string       `json:"event_venue"`
	SellerID         string       `json:"seller_id"`
	SellerName       string       `json:"seller_name,omitempty"`
	CustomerName     string       `json:"customer_name"`
	CustomerWhatsApp string       `json:"customer_whatsapp"`
	TicketCode       string       `json:"ticket_code"`
	QRPNG            []byte       `json:"-"`
	Status           TicketStatus `json:"status"`
	IssuedAt         time.Time    `json:"issued_at"`
	ScannedAt        *time.Time   `json:"scanned_at"`
}

type IssueTicketInput struct {
	EventID          string
	SellerID         string
	CustomerName     string
	CustomerWhatsApp string
}

// IssuedTicket is what the issuance engine hands back: the persisted
// ticket plus the per-channel delivery report for the customer message.
type IssuedTicket struct {
	Ticket   *Ticket
	Delivery Report
}

// SellerSummary is the read-side rollup for a single seller.
type SellerSummary struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
	Sold      int `json:"sold"`
}
