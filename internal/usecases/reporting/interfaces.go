package reporting

import (
	"context"

	"github.com/vfg2006/affiliate-insights-api/internal/domain"
)

// Reporter define a interface do serviço de relatório de afiliados
type Reporter interface {
	// SyncReport busca afiliados e pedidos no GoAffPro, monta o relatório
	// agregado e persiste as linhas de afiliados na planilha de destino.
	SyncReport(ctx context.Context, filters *domain.ReportFilters) (*domain.AffiliateReport, error)
}
