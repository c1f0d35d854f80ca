package model

import "time"

// EventClientOnboarded is the first history entry of every client.
const EventClientOnboarded = "Client Onboarded"

// Client is a customer the freelancer works for.
type Client struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email,omitempty"`
	Company string        `json:"company,omitempty"`
	History []ClientEvent `json:"history"`
}

// ClientEvent is one entry in a client's history.
type ClientEvent struct {
	Event string    `json:"event"`
	Date  time.Time `json:"date"`
}
