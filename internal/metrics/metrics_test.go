package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	c := NewCollector("test")

	c.RecordHTTPRequest("/api/v1/weather", "GET", "200", 25*time.Millisecond)
	c.RecordHTTPRequest("/api/v1/weather", "GET", "200", 30*time.Millisecond)
	c.RecordHTTPRequest("/api/v1/weather", "GET", "400", time.Millisecond)

	ok := testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("/api/v1/weather", "GET", "200"))
	if ok != 2 {
		t.Errorf("200 count = %v, want 2", ok)
	}
	bad := testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("/api/v1/weather", "GET", "400"))
	if bad != 1 {
		t.Errorf("400 count = %v, want 1", bad)
	}
}

func TestInstrumentTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewCollector("test")
	client := &http.Client{Transport: c.InstrumentTransport(nil)}

	resp, err := client.Get(server.URL + "/cgi-bin/silo/DataDrillDataset.php")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	got := testutil.ToFloat64(c.ProviderRequestsTotal.WithLabelValues("DataDrillDataset.php", "200"))
	if got != 1 {
		t.Errorf("provider request count = %v, want 1", got)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	c := NewCollector("test")
	c.RecordHTTPRequest("/api/v1/variables", "GET", "200", time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_http_requests_total") {
		t.Errorf("exposition output is missing the request counter:\n%s", rec.Body.String())
	}
}
