package response

import "hotel-booking/internal/data/entity"

type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Role     entity.UserRole `json:"role"`
}
