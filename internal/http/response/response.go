// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Успешные ответы отдаются как есть
// (каталог — массивом, созданный сервер — объектом), ошибки — в едином
// формате с единственным полем error.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse описывает структуру JSON‑ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
}

// AuthResponse описывает успешный ответ на регистрацию или вход:
// подписанный токен и публичное представление пользователя.
type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Auth возвращает успешный ответ аутентификации.
func Auth(token string, user any) AuthResponse {
	return AuthResponse{Token: token, User: user}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
