package attendee

import "time"

// Attendee is one festival registration. JSON field names match the records
// the original deployment persisted, so existing collections load unchanged.
type Attendee struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TicketCount  int       `json:"ticketCount"`
	IDProof      string    `json:"idProof"`
	Notes        string    `json:"notes,omitempty"`
	RegisteredAt time.Time `json:"registrationDate"`
	IsVerified   bool      `json:"isVerified,omitempty"`
}
