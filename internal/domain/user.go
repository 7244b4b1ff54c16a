package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
)

const DefaultTicketLimit = 100

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	TicketLimit int       `json:"ticket_limit"`
	TicketsSold int       `json:"tickets_sold"`
	Approved    bool      `json:"approved"`
	Suspended   bool      `json:"suspended"`
	WhatsApp    string    `json:"whatsapp"`
	Phone       string    `json:"phone"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	WhatsApp string
}

type UpdateProfileInput struct {
	Name      string
	WhatsApp  string
	Phone     string
	AvatarURL string
	Password  string // optional; empty means keep current credential
}

// CredentialFormat tags how a stored password credential is encoded.
// Legacy rows hold the plaintext from the pre-hashing era and are
// upgraded to Hashed on the first successful login.
type CredentialFormat int

const (
	CredentialLegacy CredentialFormat = iota
	CredentialHashed
)

func CredentialFormatOf(stored string) CredentialFormat {
	if strings.HasPrefix(stored, "$2") {
		return CredentialHashed
	}
	return CredentialLegacy
}
