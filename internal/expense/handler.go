package expense

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateExpense(username string, dto CreateExpenseDTO) (*Expense, error)
	ListExpenses(username string) ([]*Expense, error)
	DeleteExpense(username string, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.CreateExpense(username, dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	expenses, err := h.Service.ListExpenses(username)
	if err != nil {
		h.Logger.Error("GetExpenses: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*Expense{}
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"expenses": expenses})
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteExpense: invalid expense ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	if err := h.Service.DeleteExpense(username, id); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportExpenses handles GET /expenses/export and streams the owner's
// expenses as a CSV download.
func (h *Handler) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	expenses, err := h.Service.ListExpenses(username)
	if err != nil {
		h.Logger.Error("ExportExpenses: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", username+"_expenses.csv"))

	if err := WriteCSV(w, expenses); err != nil {
		h.Logger.Error("ExportExpenses: write failed", "error", err, "username", username)
	}
}
