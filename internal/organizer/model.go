package organizer

import "time"

// Organizer is an account holder able to manage registrations. The credential
// is stored as a bcrypt hash, never plaintext.
type Organizer struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
