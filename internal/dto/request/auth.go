package request

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}
