package dto

type UserItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	User    UserItem `json:"user"`
	Token   string   `json:"token"`
}

type UserResponse struct {
	Message string   `json:"message,omitempty"`
	User    UserItem `json:"user"`
}

type UserListResponse struct {
	Users []UserItem `json:"users"`
	Count int        `json:"count"`
}
