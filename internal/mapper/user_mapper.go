package mapper

import (
	"encoding/json"
	"time"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	var goals []string
	if len(u.Goals) > 0 {
		// Stored as a JSON array; a decode failure leaves goals empty.
		_ = json.Unmarshal(u.Goals, &goals)
	}

	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             entity.UserRole(u.Role),
		SubscriptionTier: entity.SubscriptionTier(u.SubscriptionTier),
		Program:          u.Program,
		CurrentLevel:     u.CurrentLevel,
		DiscoverySource:  u.DiscoverySource,
		Goals:            goals,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        u.DeletedAt.Valid,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	} else if u.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	var goals datatypes.JSON
	if u.Goals != nil {
		raw, err := json.Marshal(u.Goals)
		if err == nil {
			goals = datatypes.JSON(raw)
		}
	}

	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             string(u.Role),
		SubscriptionTier: string(u.SubscriptionTier),
		Program:          u.Program,
		CurrentLevel:     u.CurrentLevel,
		DiscoverySource:  u.DiscoverySource,
		Goals:            goals,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
