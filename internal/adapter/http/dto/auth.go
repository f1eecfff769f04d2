package dto

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserItem struct {
	ID        uint64  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	User    UserItem `json:"user"`
	Token   string   `json:"token,omitempty"`
}
