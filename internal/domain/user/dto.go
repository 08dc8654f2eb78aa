package user

import "time"

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	ExtraDays float64 `json:"extra_days"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		ExtraDays: u.ExtraDays,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
