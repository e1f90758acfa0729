package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/affiliate-insights-api/internal/api/handler/router"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/scheduler"
	"github.com/vfg2006/affiliate-insights-api/pkg/apiErrors"
)

// stubReporter evita mock com expectativa: a sincronização disparada pelo
// handler roda em background e pode terminar depois do teste.
type stubReporter struct{}

func (stubReporter) SyncReport(_ context.Context, _ *domain.ReportFilters) (*domain.AffiliateReport, error) {
	return &domain.AffiliateReport{}, nil
}

func newCronTestRouter(services CronJobServices) router.Router {
	return router.New(router.WithRoutes(CronJobs(services)...))
}

func newCronTestServices() CronJobServices {
	cfg := &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 */6 * * *",
			LookbackDays: 30,
		},
	}

	return CronJobServices{
		ReportSyncService: scheduler.NewReportSyncService(stubReporter{}, cfg),
	}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Tipo report dispara a sincronização",
			cronType:       "report",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Tipo all dispara a sincronização",
			cronType:       "all",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Tipo desconhecido é rejeitado",
			cronType:       "unknown",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newCronTestRouter(newCronTestServices())

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
				return
			}

			assert.Equal(t, tt.cronType, body["type"])
		})
	}
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rt := newCronTestRouter(CronJobServices{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/report/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrInternalServer, body["code"])
}

func TestGetCronStatus(t *testing.T) {
	rt := newCronTestRouter(newCronTestServices())

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	report := body["report"].(map[string]any)
	assert.Equal(t, false, report["enabled"])
	assert.Equal(t, "0 */6 * * *", report["cron_schedule"])
}
