// Package jsonfile реализует хранилище приложения поверх одного JSON‑документа
// на локальном диске. Документ содержит три коллекции: users, servers и plans,
// и при каждой мутации переписывается целиком.
//
// Доступ к документу сериализуется мьютексом: цикл «прочитать — изменить —
// записать» выполняется атомарно внутри Update, поэтому параллельные запросы
// не теряют чужие изменения. Формат файла при этом остаётся прежним.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hackerhosting/backend/internal/models"
)

// Document — корневая структура JSON‑файла хранилища.
type Document struct {
	Users   []models.User   `json:"users"`
	Servers []models.Server `json:"servers"`
	Plans   []models.Plan   `json:"plans"`
}

// Store — файловое хранилище с единственным JSON‑документом.
type Store struct {
	path string
	mu   sync.Mutex
}

// New создает хранилище поверх файла по указанному пути.
// Файл создается лениво при первом обращении.
func New(path string) *Store {
	return &Store{path: path}
}

// Read возвращает полный документ хранилища. Если файл отсутствует,
// сначала записывает пустой каркас документа и возвращает его.
func (s *Store) Read(ctx context.Context) (*Document, error) {
	const op = "storage.jsonfile.Read"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}

// Update выполняет атомарный цикл «прочитать — изменить — записать»:
// читает документ, передает его в fn и, если fn вернула nil,
// переписывает файл целиком. Ошибка fn отменяет запись.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	const op = "storage.jsonfile.Update"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.store(doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := emptyDocument()
		if err := s.store(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) store(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func emptyDocument() *Document {
	return &Document{
		Users:   []models.User{},
		Servers: []models.Server{},
		Plans:   []models.Plan{},
	}
}
