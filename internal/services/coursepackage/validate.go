package services

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// Validate проверяет форму пакета курсов и накапливает список нарушений.
// Правила независимы, проверка не останавливается на первой ошибке;
// пустой список означает валидную форму. Межполевых правил нет:
// discountedPrice < price сознательно не проверяется.
func Validate(form models.PackageForm) []string {
	var errs []string

	if strings.TrimSpace(form.EntranceID) == "" {
		errs = append(errs, "Entrance ID is required")
	} else if _, err := uuid.Parse(form.EntranceID); err != nil {
		errs = append(errs, "Invalid entrance ID")
	}

	if strings.TrimSpace(form.CourseName) == "" {
		errs = append(errs, "Course name is required")
	}

	if strings.TrimSpace(form.Title) == "" {
		errs = append(errs, "Title is required")
	}

	if !isNumber(form.Price) {
		errs = append(errs, "Price must be a number")
	}

	if form.DiscountedPrice != "" && !isNumber(form.DiscountedPrice) {
		errs = append(errs, "Discounted price must be a number")
	}

	if form.Duration != "" && !isNumber(form.Duration) {
		errs = append(errs, "Duration must be a number")
	}

	return errs
}

func isNumber(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
