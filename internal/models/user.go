// Package models содержит доменную модель пользователя хостинга,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Поле PasswordHash хранит bcrypt‑хэш и сериализуется только в файл хранилища,
// в ответах API пользователь всегда представлен через PublicUser.
type User struct {
	ID           string    `json:"id"`        // Уникальный идентификатор вида u_<unix-millis>
	Username     string    `json:"username"`  // Имя пользователя
	Email        string    `json:"email"`     // Электронная почта (уникальна без учёта регистра)
	PasswordHash string    `json:"password"`  // bcrypt‑хэш пароля
	CreatedAt    time.Time `json:"createdAt"` // Дата регистрации
}

// PublicUser — представление пользователя для ответов API, без хэша пароля.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public возвращает представление пользователя без чувствительных полей.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
