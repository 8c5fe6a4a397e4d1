// Package models содержит доменные структуры каталога тарифных планов.
package models

import (
	"encoding/json"
	"fmt"
)

// UnlimitedSlots — маркер безлимитного количества слотов в каталоге.
const UnlimitedSlots = "∞"

// Slots описывает количество игровых слотов тарифа: либо число,
// либо маркер "∞". Значения тарифов носят описательный характер
// и нигде не применяются как ограничение.
type Slots struct {
	Count     int  // Количество слотов, если тариф ограничен
	Unlimited bool // Признак безлимитного тарифа
}

// LimitedSlots возвращает Slots с заданным количеством.
func LimitedSlots(n int) Slots {
	return Slots{Count: n}
}

// MarshalJSON сериализует Slots в число или строку "∞".
func (s Slots) MarshalJSON() ([]byte, error) {
	if s.Unlimited {
		return json.Marshal(UnlimitedSlots)
	}
	return json.Marshal(s.Count)
}

// UnmarshalJSON принимает число или строку-маркер безлимита.
func (s *Slots) UnmarshalJSON(data []byte) error {
	const op = "models.Slots.UnmarshalJSON"
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Slots{Count: n}
		return nil
	}
	var marker string
	if err := json.Unmarshal(data, &marker); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	*s = Slots{Unlimited: true}
	return nil
}

// Plan представляет тарифный план хостинга из каталога.
// Каталог создаётся один раз при первом запуске и далее неизменен.
type Plan struct {
	ID         string `json:"id"`         // Уникальный слаг тарифа
	Name       string `json:"name"`       // Отображаемое имя
	RAM        string `json:"ram"`        // Объём памяти, описательно
	CPU        string `json:"cpu"`        // Количество vCPU, описательно
	Storage    string `json:"storage"`    // Объём диска, описательно
	Slots      Slots  `json:"slots"`      // Количество игровых слотов
	AutoBackup bool   `json:"autoBackup"` // Признак автоматических бэкапов
}
