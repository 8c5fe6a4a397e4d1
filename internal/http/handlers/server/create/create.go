// Package create реализует HTTP-обработчик создания записи игрового сервера.
//
// Запись создаётся от имени аутентифицированного пользователя; тариф
// проверяется на существование в каталоге, реального развертывания не происходит.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/hackerhosting/backend/internal/http/middlewarectx"
	"github.com/hackerhosting/backend/internal/http/response"
	"github.com/hackerhosting/backend/internal/lib/sl"
	"github.com/hackerhosting/backend/internal/models"
	hostingservice "github.com/hackerhosting/backend/internal/services/hosting"
)

// Request — входные данные для создания сервера.
type Request struct {
	Name   string `json:"name" validate:"required"`
	PlanID string `json:"planId" validate:"required"`
}

// Service описывает интерфейс бизнес-логики создания сервера.
type Service interface {
	CreateServer(ctx context.Context, ownerID, name, planID string) (*models.Server, error)
}

// Handler обрабатывает HTTP-запросы на создание сервера.
type Handler struct {
	log            *slog.Logger
	hostingService Service
	validate       *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, hostingService Service) *Handler {
	return &Handler{
		log:            log,
		hostingService: hostingService,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание сервера
// @Description Создаёт запись игрового сервера с указанным тарифом и возвращает её целиком.
// @Tags Servers
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Имя сервера и слаг тарифа"
// @Success 200 {object} models.Server
// @Failure 400 {object} response.ErrorResponse "Пропущенные поля или неизвестный тариф"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/create-server [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.server.create"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	server, err := h.hostingService.CreateServer(r.Context(), claims.UserID, req.Name, req.PlanID)
	if errors.Is(err, hostingservice.ErrPlanNotFound) {
		log.Error("unknown plan", slog.String("plan_id", req.PlanID))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Plan not found"))
		return
	}
	if err != nil {
		log.Error("failed to create server", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create server"))
		return
	}

	log.Info("server created", slog.String("server_id", server.ID), slog.String("owner_id", claims.UserID))
	render.JSON(w, r, server)
}
