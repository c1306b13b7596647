// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/crackora-admin/internal/lib/jwt"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/password"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	"github.com/magabrotheeeer/crackora-admin/internal/storage/repository"
)

// ErrUserExists возвращается при попытке зарегистрировать занятый username.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials возвращается и для неизвестного пользователя,
// и для неверного пароля: различать их нельзя, чтобы не допускать перебор имён.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени
	// или repository.ErrUserNotFound, если он не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию и выдачу JWT по паре username/password.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Signup создает нового пользователя с хэшированием пароля.
// Если username уже занят, возвращает ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, username, rawPassword, role string) (string, error) {
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = "editor" // дефолтная роль при регистрации
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}
	return s.users.RegisterUser(ctx, user)
}

// Signin проверяет пароль пользователя и генерирует JWT со сроком жизни из конфига.
// Возвращает токен и роль; причина отказа всегда ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}
