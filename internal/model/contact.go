package model

import (
	"strings"
	"time"
)

// ContactMessage is a write-once message from the public contact form.
// Read is toggled by the admin panel only.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the fields required from the public form.
func (m *ContactMessage) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(m.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(m.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}
