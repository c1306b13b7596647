// Package models содержит доменные структуры админ-бэкенда платформы подготовки к экзаменам:
// категории (Entrance), экзамены с контентом и секциями (Exam), продаваемые пакеты курсов
// (CoursePackage) и пользователей, а также вспомогательные типы для приёма данных
// из внешних источников (JSON-запросы и multipart-формы).
package models

import "time"

// Entrance представляет корневую категорию экзаменов (например, конкретную экзаменационную программу).
// На неё ссылаются Exam и CoursePackage.
type Entrance struct {
	ID          string    `json:"id"`          // Уникальный идентификатор
	Title       string    `json:"title"`       // Название категории (обязательное)
	Description string    `json:"description"` // Описание
	IsActive    bool      `json:"isActive"`    // Признак активности, по умолчанию true
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
