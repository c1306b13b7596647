// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Ошибки возвращаются телом
// вида {"message": "..."}, ошибки валидации — списком {"errors": ["...", ...]};
// структурированных кодов ошибок, кроме HTTP-статуса, нет.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Message описывает тело ответа с единственным человеко‑читаемым сообщением.
// Используется и для успехов, и для ошибок — различие несёт HTTP-статус.
type Message struct {
	Message string `json:"message"`
}

// ValidationErrors описывает тело ответа 400 с накопленным списком нарушений.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// Error возвращает тело ответа с текстом ошибки.
func Error(msg string) Message {
	return Message{Message: msg}
}

// OK возвращает тело успешного ответа с сообщением.
func OK(msg string) Message {
	return Message{Message: msg}
}

// Validation оборачивает готовый список сообщений о нарушениях.
func Validation(errs []string) ValidationErrors {
	return ValidationErrors{Errors: errs}
}

// ValidationError формирует список сообщений на основе ошибок validator.
// Каждое нарушение превращается в отдельный человеко‑читаемый текст.
func ValidationError(errs validator.ValidationErrors) ValidationErrors {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s has unexpected value", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ValidationErrors{Errors: errsMsgs}
}
