package httpdto

// LoginRequest is used for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is used for POST /api/register. Only email and password
// are required; the rest fall back to documented defaults.
type RegisterRequest struct {
	RegistrationCode string `json:"registrationCode,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	PhoneCode        string `json:"phoneCode,omitempty"`
	Phone            string `json:"phone,omitempty"`
}

// UserDTO is the client-visible projection of a record. The password hash
// never leaves the process.
type UserDTO struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PhoneCode        string `json:"phoneCode"`
	Phone            string `json:"phone"`
	RegistrationCode string `json:"registrationCode"`
	CreatedAt        string `json:"createdAt"`
}

// LoginResponse is returned by POST /api/login
type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *UserDTO `json:"user,omitempty"`
}

// RegisterResponse is returned by POST /api/register
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId,omitempty"`
}

// ErrorResponse is the uniform error body for every endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// StatusResponse is returned by GET /api/test and GET /health
type StatusResponse struct {
	Status                     string `json:"status"`
	Timestamp                  int64  `json:"timestamp"`
	LoginNotifierConfigured    bool   `json:"login_notifier_configured"`
	RegisterNotifierConfigured bool   `json:"register_notifier_configured"`
	TotalUsers                 int64  `json:"total_users"`
}

// UsersResponse is returned by GET /api/users
type UsersResponse struct {
	Total int64     `json:"total"`
	Users []UserDTO `json:"users"`
}
