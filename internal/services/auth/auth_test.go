package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crackora-admin/internal/lib/jwt"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/password"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	"github.com/magabrotheeeer/crackora-admin/internal/storage/repository"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *UsersMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newAuthService(users *UsersMock) *AuthService {
	maker := jwt.NewJWTMaker("test_secret_key_1234567890", 15*time.Minute)
	return NewAuthService(users, maker)
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("успешная регистрация", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)
		userID := uuid.New().String()

		users.On("GetUserByUsername", mock.Anything, "newuser").Return(nil, repository.ErrUserNotFound)
		users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			// Пароль хэшируется до записи, в базу сырой пароль не попадает
			return u.Username == "newuser" &&
				u.Role == "admin" &&
				u.PasswordHash != "secret123" &&
				password.CompareHash(u.PasswordHash, "secret123") == nil
		})).Return(userID, nil)

		gotID, err := svc.Signup(context.Background(), "newuser", "secret123", "admin")
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		users.AssertExpectations(t)
	})

	t.Run("пустая роль заменяется на editor", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "newuser").Return(nil, repository.ErrUserNotFound)
		users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Role == "editor"
		})).Return(uuid.New().String(), nil)

		_, err := svc.Signup(context.Background(), "newuser", "secret123", "")
		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("занятый username", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "taken").
			Return(&models.User{Username: "taken"}, nil)

		_, err := svc.Signup(context.Background(), "taken", "secret123", "")
		require.ErrorIs(t, err, ErrUserExists)
		users.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("ошибка базы при проверке имени", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "anyone").
			Return(nil, errors.New("db down"))

		_, err := svc.Signup(context.Background(), "anyone", "secret123", "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserExists)
	})
}

func TestAuthService_Signin(t *testing.T) {
	hash, err := password.GetHash("correct_password")
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "editor1",
		PasswordHash: hash,
		Role:         "editor",
	}

	t.Run("успешный вход возвращает токен с данными пользователя", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "editor1").Return(user, nil)

		token, role, err := svc.Signin(context.Background(), "editor1", "correct_password")
		require.NoError(t, err)
		assert.Equal(t, "editor", role)

		maker := jwt.NewJWTMaker("test_secret_key_1234567890", 15*time.Minute)
		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "editor1", claims.Username)
		assert.Equal(t, "editor", claims.Role)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "editor1").Return(user, nil)

		_, _, err := svc.Signin(context.Background(), "editor1", "wrong_password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("неизвестный пользователь даёт ту же ошибку, что и неверный пароль", func(t *testing.T) {
		users := new(UsersMock)
		svc := newAuthService(users)

		users.On("GetUserByUsername", mock.Anything, "ghost").
			Return(nil, repository.ErrUserNotFound)

		_, _, err := svc.Signin(context.Background(), "ghost", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
