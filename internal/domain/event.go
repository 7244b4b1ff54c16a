package domain

import "time"

type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Venue     string    `json:"venue"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventInput struct {
	Name  string
	Date  string
	Time  string
	Venue string
}
