package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent     UserRole = "STUDENT"
	UserRoleInstitution UserRole = "INSTITUTION"
	UserRoleAdmin       UserRole = "ADMIN"
)

type SubscriptionTier string

const (
	SubscriptionTierFree    SubscriptionTier = "FREE"
	SubscriptionTierPremium SubscriptionTier = "PREMIUM"
)

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	Role             UserRole
	SubscriptionTier SubscriptionTier

	// Onboarding profile
	Program         string
	CurrentLevel    string
	DiscoverySource string
	Goals           []string

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
