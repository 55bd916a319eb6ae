package report

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
)

type ServiceAPI interface {
	Dashboard(username string, ref time.Time) (*Dashboard, error)
	CategoryReport(username string) (*CategoryReport, error)
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

// GetDashboard handles GET /dashboard?month=YYYY-MM, defaulting to the
// current calendar month.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ref := time.Now()
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := time.Parse(MonthKeyLayout, monthStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "month must be in YYYY-MM form")
			return
		}
		ref = parsed
	}

	dashboard, err := h.Service.Dashboard(username, ref)
	if err != nil {
		h.Logger.Error("GetDashboard: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	username := internal.UsernameFromContext(r.Context())
	if username == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rep, err := h.Service.CategoryReport(username)
	if err != nil {
		h.Logger.Error("GetCategoryReport: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}
