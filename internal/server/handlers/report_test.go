package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
)

type stubReportService struct {
	report    *domain.Report
	err       error
	refreshes int
}

func (s *stubReportService) Report(context.Context) (*domain.Report, error) {
	return s.report, s.err
}

func (s *stubReportService) Refresh(context.Context) (*domain.Report, error) {
	s.refreshes++
	return s.report, s.err
}

func testRouter(svc *stubReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(svc, zerolog.Nop(), &config.Config{}).SetupHandlers(router)
	return router
}

func TestGetReport(t *testing.T) {
	svc := &stubReportService{report: &domain.Report{
		Rows: []domain.ReportRow{
			{Rank: 1, ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Price: "$117,000.00"},
		},
		LastUpdated: "2026-08-29 15:04 PKT",
	}}
	router := testRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/report", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var resp domain.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success: %+v", resp)
	}
	if !strings.Contains(w.Body.String(), `"last_updated":"2026-08-29 15:04 PKT"`) {
		t.Fatalf("missing report payload: %s", w.Body.String())
	}
}

func TestGetReportFetchFailure(t *testing.T) {
	router := testRouter(&stubReportService{err: errors.New("status 503")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/report", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d", w.Code)
	}

	var resp domain.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Success || !strings.Contains(resp.Message, "status 503") {
		t.Fatalf("expected surfaced error, got %+v", resp)
	}
}

func TestRefreshReport(t *testing.T) {
	svc := &stubReportService{report: &domain.Report{}}
	router := testRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/report/refresh", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if svc.refreshes != 1 {
		t.Fatalf("expected one refresh, got %d", svc.refreshes)
	}
}

func TestDashboardPage(t *testing.T) {
	router := testRouter(&stubReportService{report: &domain.Report{}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"reportTable", "Refresh Data", "/v1/report/refresh"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}
