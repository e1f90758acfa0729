package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/affiliate-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetAffiliateReport(t *testing.T) {
	t.Run("Deve responder o snapshot completo com os filtros da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lastSale := "2024-03-05"
		tracker := "2024-03-05"

		mockService := mocks.NewMockReporter(ctrl)
		mockService.EXPECT().
			SyncReport(gomock.Any(), &domain.ReportFilters{
				OrdersSince:     "2024-02-01",
				AffiliatesSince: "2024-01-15",
			}).
			Return(&domain.AffiliateReport{
				Affiliates: []domain.AffiliateSummary{
					{ID: 1, Name: "Ana", Email: "ana@example.com", ReferralCode: "ana10", Revenue: 150.5, SalesCount: 2, LastSale: &lastSale},
				},
				Customers: []domain.CustomerSummary{},
				Partners:  []goaffprodomain.Affiliate{},
				Tracker:   domain.Tracker{Orders: &tracker},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/affiliates?orders_since=2024-02-01&affiliates_since=2024-01-15", nil)
		rec := httptest.NewRecorder()

		GetAffiliateReport(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		affiliates := body["affiliates"].([]any)
		assert.Len(t, affiliates, 1)

		first := affiliates[0].(map[string]any)
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, "ana@example.com", first["email"])
		assert.Equal(t, "2024-03-05", first["lastSale"])
		assert.Nil(t, first["firstSale"])

		trackerBody := body["tracker"].(map[string]any)
		assert.Equal(t, "2024-03-05", trackerBody["orders"])
		assert.Nil(t, trackerBody["affiliates"])
	})

	t.Run("Falha do pipeline responde 500 com o código da categoria", func(t *testing.T) {
		tests := []struct {
			name         string
			err          error
			expectedCode string
		}{
			{
				name:         "Falha no upstream",
				err:          &reporting.UpstreamFetchError{Err: assert.AnError},
				expectedCode: apiErrors.ErrUpstreamFetch,
			},
			{
				name:         "Falha na leitura da planilha",
				err:          &reporting.SheetReadError{Err: assert.AnError},
				expectedCode: apiErrors.ErrSheetRead,
			},
			{
				name:         "Falha na escrita da planilha",
				err:          &reporting.SheetWriteError{Err: assert.AnError},
				expectedCode: apiErrors.ErrSheetWrite,
			},
			{
				name:         "Falha genérica da agregação",
				err:          assert.AnError,
				expectedCode: apiErrors.ErrComputation,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				mockService := mocks.NewMockReporter(ctrl)
				mockService.EXPECT().
					SyncReport(gomock.Any(), gomock.Any()).
					Return(nil, tt.err)

				req := httptest.NewRequest(http.MethodGet, "/v1/reports/affiliates", nil)
				rec := httptest.NewRecorder()

				GetAffiliateReport(mockService).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				var body map[string]any
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.err.Error(), body["error"])
				assert.Equal(t, tt.expectedCode, body["code"])
			})
		}
	})

	t.Run("Sem filtros na query, os cursores vão vazios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockReporter(ctrl)
		mockService.EXPECT().
			SyncReport(gomock.Any(), &domain.ReportFilters{}).
			Return(&domain.AffiliateReport{
				Affiliates: []domain.AffiliateSummary{},
				Customers:  []domain.CustomerSummary{},
				Partners:   []goaffprodomain.Affiliate{},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/affiliates", nil)
		rec := httptest.NewRecorder()

		GetAffiliateReport(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
