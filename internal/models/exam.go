package models

import "time"

// Section описывает элемент оглавления экзамена.
// ID используется фронтендом как якорь, Link — ссылка вида "#id" для прокрутки.
// Уникальность ID внутри экзамена хранилищем не проверяется,
// дубликат просто перекрывает предыдущий при поиске по якорю.
type Section struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	Link  string `json:"link"`
}

// Exam представляет единицу контента внутри категории Entrance:
// свободный текст (Content) и упорядоченный список секций для навигации.
// Секции заменяются только целиком, поэлементное обновление не поддерживается.
type Exam struct {
	ID          string    `json:"id"`
	EntranceID  string    `json:"entranceID"` // Ссылка на Entrance (обязательная)
	Title       string    `json:"title"`      // Название экзамена (обязательное)
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	Content     string    `json:"content"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
