package domain

import "time"

type ScanLog struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	TicketCode string    `json:"ticket_code"`
	ScannerID  string    `json:"scanner_id"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// ScanLogEntry is a scan log row hydrated with ticket and event
// display fields for the admin rollup.
type ScanLogEntry struct {
	ID               string    `json:"id"`
	TicketCode       string    `json:"ticket_code"`
	CustomerName     string    `json:"customer_name"`
	CustomerWhatsApp string    `json:"customer_whatsapp"`
	EventName        string    `json:"event_name"`
	SellerName       string    `json:"seller_name"`
	IssuedAt         time.Time `json:"issued_at"`
	ScannedAt        time.Time `json:"scanned_at"`
}
