package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
	chiMiddleware "github.com/go-chi/chi/middleware"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transport Middleware Suite")
}

var _ = Describe("LoggingMiddleware", func() {
	var (
		logBuf  *bytes.Buffer
		handler http.Handler
	)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Same chain the router installs: chi's RequestID populates the
	// request_id the logging middleware reads.
	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logBuf, nil))
		handler = chiMiddleware.RequestID(middleware.LoggingMiddleware(logger)(okHandler))
	})

	logLines := func() []map[string]any {
		var lines []map[string]any
		dec := json.NewDecoder(logBuf)
		for dec.More() {
			var line map[string]any
			Expect(dec.Decode(&line)).To(Succeed())
			lines = append(lines, line)
		}
		return lines
	}

	It("should log a populated request_id on request and response lines", func() {
		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		lines := logLines()
		Expect(lines).To(HaveLen(2))
		for _, line := range lines {
			Expect(line["request_id"]).NotTo(BeEmpty())
		}
	})

	It("should log the response status and duration", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		lines := logLines()
		response := lines[1]
		Expect(response["status_code"]).To(BeNumerically("==", http.StatusOK))
		Expect(response).To(HaveKey("duration_ms"))
	})

	It("should mask authorization headers in the request line", func() {
		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		req.Header.Set("Authorization", "Bearer super-secret-token")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(logBuf.String()).NotTo(ContainSubstring("super-secret-token"))
		Expect(logBuf.String()).To(ContainSubstring("[FILTERED]"))
	})
})
