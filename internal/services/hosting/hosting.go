// Package hosting содержит логику бизнес-уровня для каталога тарифов
// и записей игровых серверов: посев каталога, выборки и создание серверов.
package hosting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hackerhosting/backend/internal/models"
	"github.com/hackerhosting/backend/internal/storage/jsonfile"
)

// ErrPlanNotFound возвращается при создании сервера с неизвестным тарифом.
var ErrPlanNotFound = errors.New("plan not found")

// Store описывает контракт хранилища для работы с каталогом и серверами.
type Store interface {
	Read(ctx context.Context) (*jsonfile.Document, error)
	Update(ctx context.Context, fn func(doc *jsonfile.Document) error) error
}

// Service отвечает за каталог тарифов и записи серверов.
type Service struct {
	store Store
}

// New создает новый экземпляр Service.
func New(store Store) *Service {
	return &Service{store: store}
}

// SeedPlans заполняет каталог тарифов при первом запуске.
// Если каталог уже не пуст, ничего не меняет — повторный запуск безопасен.
func (s *Service) SeedPlans(ctx context.Context) error {
	const op = "services.hosting.SeedPlans"

	err := s.store.Update(ctx, func(doc *jsonfile.Document) error {
		if len(doc.Plans) > 0 {
			return nil
		}
		doc.Plans = defaultPlans()
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListPlans возвращает полный каталог тарифов.
func (s *Service) ListPlans(ctx context.Context) ([]models.Plan, error) {
	const op = "services.hosting.ListPlans"

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if doc.Plans == nil {
		return []models.Plan{}, nil
	}
	return doc.Plans, nil
}

// ListOwnedServers возвращает все серверы, принадлежащие пользователю.
func (s *Service) ListOwnedServers(ctx context.Context, ownerID string) ([]models.Server, error) {
	const op = "services.hosting.ListOwnedServers"

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	owned := []models.Server{}
	for _, srv := range doc.Servers {
		if srv.OwnerID == ownerID {
			owned = append(owned, srv)
		}
	}
	return owned, nil
}

// CreateServer создает запись сервера для пользователя.
//
// Тариф проверяется на существование только в момент создания; запись
// получает статус "running" и пустой список игроков.
func (s *Service) CreateServer(ctx context.Context, ownerID, name, planID string) (*models.Server, error) {
	const op = "services.hosting.CreateServer"

	server := models.Server{
		ID:        newServerID(),
		OwnerID:   ownerID,
		Name:      name,
		PlanID:    planID,
		Status:    models.StatusRunning,
		CreatedAt: time.Now().UTC(),
		Players:   []string{},
	}

	err := s.store.Update(ctx, func(doc *jsonfile.Document) error {
		known := false
		for _, p := range doc.Plans {
			if p.ID == planID {
				known = true
				break
			}
		}
		if !known {
			return ErrPlanNotFound
		}
		doc.Servers = append(doc.Servers, server)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &server, nil
}

func defaultPlans() []models.Plan {
	return []models.Plan{
		{ID: "basic", Name: "Basic", RAM: "2GB", CPU: "1 vCPU", Storage: "5GB", Slots: models.LimitedSlots(10), AutoBackup: true},
		{ID: "standard", Name: "Standard", RAM: "4GB", CPU: "2 vCPU", Storage: "10GB", Slots: models.LimitedSlots(25), AutoBackup: true},
		{ID: "ultimate", Name: "Ultimate", RAM: "Unlimited", CPU: "4 vCPU", Storage: "Unlimited", Slots: models.Slots{Unlimited: true}, AutoBackup: true},
	}
}

func newServerID() string {
	return fmt.Sprintf("srv_%d", time.Now().UnixMilli())
}
