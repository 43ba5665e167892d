package models

import "time"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type AuthResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UsersResponse struct {
	Users      []User      `json:"users"`
	Pagination *Pagination `json:"pagination"`
}

type UserResponse struct {
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	AdminCount  int `json:"adminCount"`
	RecentCount int `json:"recentCount"`
}

type UserStatsResponse struct {
	Stats UserStats `json:"stats"`
}

// UserSearchParams mirrors the query string of GET /users/search.
type UserSearchParams struct {
	Query string
	Role  string
	Page  int
	Limit int
}
