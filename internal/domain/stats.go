package domain

// Stats is the admin dashboard rollup across all stores.
type Stats struct {
	TotalTickets  int `json:"total_tickets"`
	UsedTickets   int `json:"used_tickets"`
	UnusedTickets int `json:"unused_tickets"`
	Sellers       int `json:"sellers"`
	Events        int `json:"events"`
	ActiveEvents  int `json:"active_events"`
}
