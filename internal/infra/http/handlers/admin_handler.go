package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/marketmind/internal/usecase"
)

type AdminHandler struct {
	UseCase *usecase.AdminUseCase
	Logger  *zap.Logger
}

func NewAdminHandler(uc *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{UseCase: uc, Logger: logger}
}

func (h *AdminHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.UseCase.Metrics(r.Context())
	if err != nil {
		h.fail(w, "admin metrics", err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *AdminHandler) DailyAPICalls(w http.ResponseWriter, r *http.Request) {
	points, err := h.UseCase.DailyAPICalls(r.Context())
	if err != nil {
		h.fail(w, "daily api calls", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.UseCase.Users(r.Context())
	if err != nil {
		h.fail(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ToggleUser answers an unknown id with {"error": "User not found"} and 200.
func (h *AdminHandler) ToggleUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "user id must be an integer")
		return
	}

	user, err := h.UseCase.ToggleUser(r.Context(), id)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeSoftError(w, err.Error())
			return
		}
		h.fail(w, "toggle user", err)
		return
	}

	h.Logger.Info("user toggled", zap.Int("user_id", user.ID), zap.String("status", string(user.Status)))
	writeJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	points, err := h.UseCase.Revenue(r.Context())
	if err != nil {
		h.fail(w, "revenue", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *AdminHandler) fail(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op+" failed", zap.Error(err))
	writeUseCaseError(w, err)
}
