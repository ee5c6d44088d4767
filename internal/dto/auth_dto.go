package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=STUDENT INSTITUTION"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Role             string    `json:"role"`
	SubscriptionTier string    `json:"subscription_tier"`
	Program          string    `json:"program,omitempty"`
	CurrentLevel     string    `json:"current_level,omitempty"`
	DiscoverySource  string    `json:"discovery_source,omitempty"`
	Goals            []string  `json:"goals,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
