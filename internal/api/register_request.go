package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Ana"`
	Email    string `json:"email" validate:"required,email" example:"ana@x.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
	Role     string `json:"role" validate:"required,role" example:"PASSENGER" enums:"PASSENGER,DRIVER"`
}
