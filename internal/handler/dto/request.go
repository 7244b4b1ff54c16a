package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	WhatsApp string `json:"whatsapp"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	WhatsApp  string `json:"whatsapp"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
	Password  string `json:"password"`
}

type EventRequest struct {
	Name  string `json:"name" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Venue string `json:"venue" binding:"required"`
}

type IssueTicketRequest struct {
	EventID          string `json:"event_id" binding:"required,uuid"`
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerWhatsApp string `json:"customer_whatsapp"`
}

type ScanRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
}

type TicketLimitRequest struct {
	TicketLimit *int `json:"ticket_limit" binding:"required"`
}
