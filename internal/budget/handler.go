package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
)

type ServiceAPI interface {
	SetBudget(username string, dto SetBudgetDTO) (*Budget, error)
	ListBudgets(username string) ([]*Budget, error)
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

func (h *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SetBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.SetBudget(username, dto)
	if err != nil {
		h.Logger.Error("SetBudget: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	budgets, err := h.Service.ListBudgets(username)
	if err != nil {
		h.Logger.Error("GetBudgets: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}
	if budgets == nil {
		budgets = []*Budget{}
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"budgets": budgets})
}
