// Package models содержит доменную модель игрового сервера.
package models

import "time"

// StatusRunning — статус, присваиваемый серверу при создании.
const StatusRunning = "running"

// Server представляет запись об игровом сервере пользователя.
// Запись инертна: реального процесса за ней не стоит, статус — свободный текст,
// список игроков никогда не наполняется.
type Server struct {
	ID        string    `json:"id"`        // Уникальный идентификатор вида srv_<unix-millis>
	OwnerID   string    `json:"ownerId"`   // Идентификатор пользователя-владельца
	Name      string    `json:"name"`      // Имя сервера
	PlanID    string    `json:"planId"`    // Слаг тарифа, проверяется только при создании
	Status    string    `json:"status"`    // Текущий статус
	CreatedAt time.Time `json:"createdAt"` // Дата создания
	Players   []string  `json:"players"`   // Список игроков, всегда пуст
}
