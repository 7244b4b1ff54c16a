package dto

import (
	"time"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/qr"
)

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	TicketLimit int    `json:"ticket_limit"`
	TicketsSold int    `json:"tickets_sold"`
	Approved    bool   `json:"approved"`
	Suspended   bool   `json:"suspended"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Phone       string `json:"phone,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type ApprovalResponse struct {
	Seller        UserResponse  `json:"seller"`
	Notifications domain.Report `json:"notifications"`
}

type EventResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type TicketResponse struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	EventName        string     `json:"event_name"`
	EventDate        string     `json:"event_date"`
	EventTime        string     `json:"event_time"`
	EventVenue       string     `json:"event_venue"`
	SellerID         string     `json:"seller_id"`
	SellerName       string     `json:"seller_name,omitempty"`
	CustomerName     string     `json:"customer_name"`
	CustomerWhatsApp string     `json:"customer_whatsapp,omitempty"`
	TicketCode       string     `json:"ticket_code"`
	QRCode           string     `json:"qr_code,omitempty"`
	Status           string     `json:"status"`
	IssuedAt         string     `json:"issued_at"`
	ScannedAt        *time.Time `json:"scanned_at,omitempty"`
}

type IssuedTicketResponse struct {
	Ticket        TicketResponse `json:"ticket"`
	Notifications domain.Report  `json:"notifications"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		TicketLimit: u.TicketLimit,
		TicketsSold: u.TicketsSold,
		Approved:    u.Approved,
		Suspended:   u.Suspended,
		WhatsApp:    u.WhatsApp,
		Phone:       u.Phone,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		Date:      e.Date,
		Time:      e.Time,
		Venue:     e.Venue,
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:               t.ID,
		EventID:          t.EventID,
		EventName:        t.EventName,
		EventDate:        t.EventDate,
		EventTime:        t.EventTime,
		EventVenue:       t.EventVenue,
		SellerID:         t.SellerID,
		SellerName:       t.SellerName,
		CustomerName:     t.CustomerName,
		CustomerWhatsApp: t.CustomerWhatsApp,
		TicketCode:       t.TicketCode,
		Status:           string(t.Status),
		IssuedAt:         t.IssuedAt.Format(time.RFC3339),
		ScannedAt:        t.ScannedAt,
	}
	if len(t.QRPNG) > 0 {
		resp.QRCode = qr.DataURL(t.QRPNG)
	}

	return resp
}
