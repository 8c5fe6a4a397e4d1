// Package list реализует HTTP-обработчик списка серверов текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/hackerhosting/backend/internal/http/middlewarectx"
	"github.com/hackerhosting/backend/internal/http/response"
	"github.com/hackerhosting/backend/internal/lib/sl"
	"github.com/hackerhosting/backend/internal/models"
)

// Service описывает интерфейс бизнес-логики серверов.
type Service interface {
	ListOwnedServers(ctx context.Context, ownerID string) ([]models.Server, error)
}

// Handler обрабатывает HTTP-запросы списка серверов пользователя.
type Handler struct {
	log            *slog.Logger
	hostingService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, hostingService Service) *Handler {
	return &Handler{
		log:            log,
		hostingService: hostingService,
	}
}

// ServeHTTP godoc
// @Summary Серверы пользователя
// @Description Возвращает все серверы, владельцем которых является аутентифицированный пользователь.
// @Tags Servers
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Server
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/myservers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.server.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := middlewarectx.Claims(r.Context())
	if !ok {
		log.Error("claims missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Invalid token"))
		return
	}

	servers, err := h.hostingService.ListOwnedServers(r.Context(), claims.UserID)
	if err != nil {
		log.Error("failed to list servers", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list servers"))
		return
	}

	render.JSON(w, r, servers)
}
