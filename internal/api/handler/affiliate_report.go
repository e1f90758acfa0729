package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-insights-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetAffiliateReport monta o relatório de afiliados sob demanda: busca os
// dados no GoAffPro, agrega, persiste as linhas na planilha e devolve o
// snapshot completo na resposta.
func GetAffiliateReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Os cursores são opacos: repassados como recebidos ao upstream.
		filters := &domain.ReportFilters{
			OrdersSince:     r.URL.Query().Get("orders_since"),
			AffiliatesSince: r.URL.Query().Get("affiliates_since"),
		}

		logger.WithFields(log.Fields{
			"orders_since":     filters.OrdersSince,
			"affiliates_since": filters.AffiliatesSince,
		}).Info("report: building affiliate report")

		report, err := service.SyncReport(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("report: error building affiliate report")

			apiErrors.WriteError(w, reportErrorCode(err), err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"affiliates": len(report.Affiliates),
			"customers":  len(report.Customers),
		}).Info("report: affiliate report built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: error encoding response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// reportErrorCode traduz a falha do pipeline para o código de erro da API
func reportErrorCode(err error) string {
	var upstreamErr *reporting.UpstreamFetchError
	if errors.As(err, &upstreamErr) {
		return apiErrors.ErrUpstreamFetch
	}

	var readErr *reporting.SheetReadError
	if errors.As(err, &readErr) {
		return apiErrors.ErrSheetRead
	}

	var writeErr *reporting.SheetWriteError
	if errors.As(err, &writeErr) {
		return apiErrors.ErrSheetWrite
	}

	return apiErrors.ErrComputation
}
