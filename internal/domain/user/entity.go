package user

import "time"

// User represents a registration record. The store lives for the process
// lifetime only; records are never updated or deleted.
type User struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	PasswordHash     string
	PhoneCode        string
	Phone            string
	RegistrationCode string
	CreatedAt        time.Time
}

// Fallback values for optional registration fields.
const (
	FallbackField = "not applicable"
	FallbackCode  = "no code"
)
