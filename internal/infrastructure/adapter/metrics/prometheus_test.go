package metrics

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCounters(t *testing.T) {
	r := NewRegistry()

	r.TopUpCompleted(1000)
	r.TopUpCompleted(500)
	r.PaymentCompleted("PLN", 10000)
	r.LedgerFailed("payment", "insufficient_balance")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ledgerOperations.WithLabelValues("topup", "success")))
	assert.Equal(t, 1500.0, testutil.ToFloat64(r.ledgerAmount.WithLabelValues("topup", "")))
	assert.Equal(t, 10000.0, testutil.ToFloat64(r.ledgerAmount.WithLabelValues("payment", "PLN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ledgerOperations.WithLabelValues("payment", "insufficient_balance")))
}

func TestHTTPMetricsAndHandler(t *testing.T) {
	r := NewRegistry()

	done := r.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(r.httpInFlight))

	r.ObserveRequest("GET", "/balance", 200, 15*time.Millisecond)
	r.ObserveRequest("GET", "", 404, time.Millisecond)
	r.ObservePool(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/balance", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.dbIdle))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "sims_ppob_http_requests_total")
	assert.Contains(t, string(body), "sims_ppob_db_open_connections 3")
}
