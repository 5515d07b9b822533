package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// в сообщениях используем человекочитаемые имена полей из тега label
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if label := f.Tag.Get("label"); label != "" {
				return label
			}
			return f.Name
		})
	})
	return validate
}

// ValidateForm проверяет форму по тегам validate и возвращает сообщение для пользователя
// Пустая строка означает, что форма корректна
func ValidateForm(form interface{}) string {
	err := validatorInstance().Struct(form)
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid form data."
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return strings.Join(messages, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
