package service

import (
	"context"
	"os"
	"time"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/pkg/events"
	pktNats "studentdrive-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	tokenExpiry    time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, tokenExpiryHrs int) IAuthService {
	if tokenExpiryHrs <= 0 {
		tokenExpiryHrs = 72
	}
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		tokenExpiry:    time.Duration(tokenExpiryHrs) * time.Hour,
	}
}

func userToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:               user.Id,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Role:             string(user.Role),
		SubscriptionTier: string(user.SubscriptionTier),
		Program:          user.Program,
		CurrentLevel:     user.CurrentLevel,
		DiscoverySource:  user.DiscoverySource,
		Goals:            user.Goals,
		CreatedAt:        user.CreatedAt,
	}
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.WithMessage(apperrors.ErrConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRoleStudent
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		Id:               uuid.New(),
		Email:            req.Email,
		PasswordHash:     string(hash),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Role:             role,
		SubscriptionTier: entity.SubscriptionTierFree,
		CreatedAt:        time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(events.TypeUserRegistered, map[string]interface{}{
			"user_id": user.Id.String(),
			"email":   user.Email,
			"role":    string(user.Role),
		})
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	signed, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: signed, User: userToResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid credentials")
	}

	signed, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: signed, User: userToResponse(user)}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "User not found")
	}

	res := userToResponse(user)
	return &res, nil
}
