package model

import "time"

// DefaultPlatform is used when a message arrives without a platform.
const DefaultPlatform = "Email"

// Communication is a raw inbound message.
type Communication struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
