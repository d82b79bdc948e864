package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"3f0e5c1e-6a2b-4f4e-9a57-0d7b9c5f2b11"`
	Name      string    `json:"name" example:"Ana"`
	Email     string    `json:"email" example:"ana@x.com"`
	Password  string    `json:"password" example:"$2a$10$..."`
	Role      string    `json:"role" example:"PASSENGER"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOi..."`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Connection successful"`
}

// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"Invalid email"`
}
