package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListCategories(username string) ([]string, error)
	AddCategory(username string, dto CreateCategoryDTO) error
	DeleteCategory(username, name string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	names, err := h.Service.ListCategories(username)
	if err != nil {
		h.Logger.Error("GetCategories: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": names})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.AddCategory(username, dto); err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"name": dto.Name})
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" {
		h.WriteError(w, http.StatusBadRequest, "category name is required")
		return
	}

	if err := h.Service.DeleteCategory(username, name); err != nil {
		h.Logger.Error("DeleteCategory: service error", "error", err, "username", username, "name", name)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
