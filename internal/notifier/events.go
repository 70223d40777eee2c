package notifier

import "time"

// ClientMeta is request-derived context attached to alerts. It is never
// persisted.
type ClientMeta struct {
	IP        string
	UserAgent string
	At        time.Time
}

// LoginEvent describes a validated login attempt. The submitted password
// is intentionally absent: alerts carry the outcome, never the secret.
type LoginEvent struct {
	Email   string
	Matched bool
	Meta    ClientMeta
}

// RegistrationEvent describes a completed registration.
type RegistrationEvent struct {
	UserID           int64
	FirstName        string
	LastName         string
	Email            string
	PhoneCode        string
	Phone            string
	RegistrationCode string
	Meta             ClientMeta
}
