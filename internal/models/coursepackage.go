package models

import "time"

// CoursePackage представляет продаваемый пакет курсов, привязанный к категории Entrance.
// Поле Image хранит либо пустую строку (картинка ещё не загружена), либо относительный
// путь вида /coursepackages/<id>/image<ext>, где <id> совпадает с идентификатором пакета.
type CoursePackage struct {
	ID              string    `json:"id"`
	EntranceID      string    `json:"entranceID"`              // Ссылка на Entrance (обязательная)
	EntranceTitle   string    `json:"entranceTitle,omitempty"` // Название категории, заполняется при чтении
	CourseName      string    `json:"courseName"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discountedPrice"` // nil, если скидки нет
	Teacher         string    `json:"teacher"`
	Duration        int       `json:"duration"` // Длительность в месяцах
	Features        string    `json:"features"`
	ExamsCovered    []string  `json:"examsCovered"`
	Type            string    `json:"type"`
	Image           string    `json:"image"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PackageForm используется для приёма данных пакета из multipart-формы,
// прежде чем конвертировать их в CoursePackage.
// Числовые поля приходят строками, чтобы их можно было валидировать и парсить вручную.
type PackageForm struct {
	EntranceID      string   // Идентификатор категории
	CourseName      string   // Название курса
	Title           string   // Название пакета
	Content         string   // Описание пакета
	Price           string   // Цена, обязательное числовое поле
	DiscountedPrice string   // Цена со скидкой (опционально)
	Teacher         string   // Преподаватель
	Duration        string   // Длительность (опционально, число)
	Features        string   // Список особенностей
	ExamsCovered    []string // Покрываемые экзамены
	Type            string   // Тип пакета
}

// PackageList результат постраничной выборки пакетов для админки.
type PackageList struct {
	Items       []*CoursePackage
	CurrentPage int
	TotalPages  int
	TotalCount  int
}
