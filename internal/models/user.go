package models

import "time"

// User представляет учётную запись администратора или редактора контента.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль пользователя, admin или editor
	CreatedAt    time.Time // Дата создания учётной записи
}
