package rentalapi

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ответ POST /auth/login
type LoginResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType,omitempty"`
}

// RegisterRequest тело POST /auth/signup
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// MessageResponse типовой ответ backend с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// errorResponse тело ошибки backend
type errorResponse struct {
	Message string `json:"message"`
}
