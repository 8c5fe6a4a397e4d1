// Package list реализует HTTP-обработчик выдачи каталога тарифных планов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/hackerhosting/backend/internal/http/response"
	"github.com/hackerhosting/backend/internal/lib/sl"
	"github.com/hackerhosting/backend/internal/models"
)

// Service описывает интерфейс бизнес-логики каталога тарифов.
type Service interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
}

// Handler обрабатывает HTTP-запросы каталога тарифов.
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
// @Summary Каталог тарифов
// @Description Возвращает полный каталог тарифных планов (или пустой массив).
// @Tags Plans
// @Produce  json
// @Success 200 {array} models.Plan
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.hostingService.ListPlans(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list plans"))
		return
	}

	render.JSON(w, r, plans)
}
