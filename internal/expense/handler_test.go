package expense_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Expense Handler", func() {
	var (
		mockRepo *MockRepository
		handler  *expense.Handler
		router   *chi.Mux
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		service := expense.NewService(mockRepo, testLogger())
		handler = expense.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/expenses", handler.CreateExpense)
		router.Get("/expenses", handler.GetExpenses)
		router.Get("/expenses/export", handler.ExportExpenses)
		router.Delete("/expenses/{id}", handler.DeleteExpense)
	})

	doRequest := func(method, target, username, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if username != "" {
			req = req.WithContext(internal.ContextWithUsername(req.Context(), username))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("POST /expenses", func() {
		It("should create an expense and echo it back", func() {
			w := doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"2026-08-15","category":"Food","amount":"125.50","description":"lunch"}`)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var created expense.Expense
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Category).To(Equal("Food"))
			Expect(created.Amount.Equal(decimal.NewFromFloat(125.50))).To(BeTrue())
		})

		It("should reject requests without an authenticated user", func() {
			w := doRequest(http.MethodPost, "/expenses", "",
				`{"date":"2026-08-15","category":"Food","amount":"10"}`)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject an invalid payload with a bad request", func() {
			w := doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"not-a-date","category":"Food","amount":"10"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /expenses", func() {
		It("should return an empty array rather than null", func() {
			w := doRequest(http.MethodGet, "/expenses", "alice", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"expenses":[]`))
		})

		It("should list only the caller's expenses", func() {
			doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"2026-08-15","category":"Food","amount":"10"}`)
			doRequest(http.MethodPost, "/expenses", "bob",
				`{"date":"2026-08-15","category":"Food","amount":"99"}`)

			w := doRequest(http.MethodGet, "/expenses", "alice", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Expenses []*expense.Expense `json:"expenses"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Expenses).To(HaveLen(1))
		})
	})

	Describe("DELETE /expenses/{id}", func() {
		It("should delete the caller's expense", func() {
			doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"2026-08-15","category":"Food","amount":"10"}`)

			w := doRequest(http.MethodDelete, "/expenses/1", "alice", "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("should return not found when the expense belongs to someone else", func() {
			doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"2026-08-15","category":"Food","amount":"10"}`)

			w := doRequest(http.MethodDelete, "/expenses/1", "mallory", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should reject a non-numeric id", func() {
			w := doRequest(http.MethodDelete, "/expenses/abc", "alice", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /expenses/export", func() {
		It("should stream a CSV attachment", func() {
			doRequest(http.MethodPost, "/expenses", "alice",
				`{"date":"2026-08-15","category":"Food","amount":"125.50","description":"lunch"}`)

			w := doRequest(http.MethodGet, "/expenses/export", "alice", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring("alice_expenses.csv"))

			lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(Equal("id,date,category,amount,description"))
			Expect(lines[1]).To(ContainSubstring("125.50"))
		})
	})
})
