package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@x.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
}
