package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/pkg/metrics"
)

// Роутер собирается так же, как в main: /metrics на корне,
// middleware только на API-сабрроутере
func newMetricsTestRouter(m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(MetricsMiddleware(m, "test"))
	api.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	return r
}

func scrape(t *testing.T, router *mux.Router) string {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetricsMiddleware_CountsAPIRequestsOnly(t *testing.T) {
	m := metrics.New("test")
	router := newMetricsTestRouter(m)

	// Пара скрейпов до первого API-запроса
	scrape(t, router)
	scrape(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	body := scrape(t, router)

	// API-запрос учтён по шаблону маршрута
	assert.Contains(t, body, `path="/api/v1/ping"`)
	// Скрейпы самого Prometheus в сервисные метрики не попадают
	assert.NotContains(t, body, `path="/metrics"`)
}
