// Package auth содержит логику бизнес-уровня для регистрации и входа пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/hackerhosting/backend/internal/lib/jwt"
	"github.com/hackerhosting/backend/internal/lib/password"
	"github.com/hackerhosting/backend/internal/models"
	"github.com/hackerhosting/backend/internal/storage/jsonfile"
)

// ErrEmailTaken возвращается при попытке регистрации на уже занятый email.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Текст ошибки намеренно одинаков для обоих случаев, чтобы не раскрывать,
// какая именно проверка не прошла.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store описывает контракт хранилища для работы с пользователями.
type Store interface {
	Read(ctx context.Context) (*jsonfile.Document, error)
	Update(ctx context.Context, fn func(doc *jsonfile.Document) error) error
}

// Service отвечает за регистрацию, авторизацию и выпуск JWT.
type Service struct {
	store    Store
	jwtMaker jwtlib.Maker
}

// New создает новый экземпляр Service.
func New(store Store, jwtMaker jwtlib.Maker) *Service {
	return &Service{
		store:    store,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу выдает токен.
//
// Email сравнивается с существующими без учёта регистра; проверка уникальности
// и добавление записи выполняются в одном атомарном цикле обновления документа.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (string, models.PublicUser, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:           newUserID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.store.Update(ctx, func(doc *jsonfile.Document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, email) {
				return ErrEmailTaken
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return "", models.PublicUser{}, ErrEmailTaken
		}
		return "", models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Username)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Public(), nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, models.PublicUser, error) {
	const op = "services.auth.Login"

	doc, err := s.store.Read(ctx)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}

	var user *models.User
	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Email, email) {
			user = &doc.Users[i]
			break
		}
	}
	if user == nil {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Username)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Public(), nil
}

func newUserID() string {
	return fmt.Sprintf("u_%d", time.Now().UnixMilli())
}
