package service

import (
	"context"
	"errors"
	"testing"

	"studentdrive-be/internal/apperrors"
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/contract"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type authUserRepo struct {
	contract.UserRepository
	byEmail map[string]*entity.User
	created *entity.User
}

func (r *authUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			return r.byEmail[byEmail.Email], nil
		}
		if byId, ok := spec.(specification.ByID); ok {
			for _, u := range r.byEmail {
				if u.Id == byId.ID {
					return u, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *authUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.created = user
	return nil
}

type authUow struct {
	unitofwork.UnitOfWork
	users *authUserRepo
}

func (u *authUow) UserRepository() contract.UserRepository { return u.users }

type authUowFactory struct {
	uow *authUow
}

func (f *authUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newAuthServiceForTest(users *authUserRepo) IAuthService {
	return NewAuthService(&authUowFactory{uow: &authUow{users: users}}, nil, 72)
}

func TestRegisterNewUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := &authUserRepo{byEmail: map[string]*entity.User{}}
	svc := newAuthServiceForTest(users)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "student@example.com",
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "student@example.com", res.User.Email)
	assert.Equal(t, "STUDENT", res.User.Role, "role defaults to STUDENT")
	assert.Equal(t, "FREE", res.User.SubscriptionTier)

	// The stored hash must verify against the plain password.
	assert.NotEqual(t, "hunter22", users.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("hunter22")))

	// The token must be verifiable and carry the user id.
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, users.created.Id.String(), claims["user_id"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := &entity.User{Id: uuid.New(), Email: "taken@example.com"}
	users := &authUserRepo{byEmail: map[string]*entity.User{existing.Email: existing}}
	svc := newAuthServiceForTest(users)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter22",
	})

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Email already registered", err.Error())
	assert.Nil(t, users.created)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	user := &entity.User{
		Id:           uuid.New(),
		Email:        "student@example.com",
		PasswordHash: string(hash),
		Role:         entity.UserRoleStudent,
	}
	users := &authUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	svc := newAuthServiceForTest(users)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "student@example.com",
			Password: "hunter22",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, user.Id, res.User.Id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "student@example.com",
			Password: "wrong",
		})
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
		assert.Equal(t, "Invalid credentials", err.Error(), "unknown email and wrong password are indistinguishable")
	})
}

func TestMe(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@example.com"}
	users := &authUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	svc := newAuthServiceForTest(users)

	t.Run("found", func(t *testing.T) {
		res, err := svc.Me(context.Background(), user.Id)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Me(context.Background(), uuid.New())
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}
