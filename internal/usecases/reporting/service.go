package reporting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro"
	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/pkg/log"
	"github.com/vfg2006/affiliate-insights-api/pkg/utils"
)

// SheetHeader é o cabeçalho fixo de oito colunas da aba de afiliados.
var SheetHeader = []any{
	"ID",
	"Name",
	"Email",
	"Referral Code",
	"Revenue",
	"Sales Count",
	"First Sale",
	"Last Sale",
}

type Service struct {
	cfg      *config.Config
	goaffpro goaffpro.GoAffProIntegrator
	sheets   spreadsheet.Store
}

// NewService cria uma nova instância do serviço de relatório de afiliados
func NewService(
	cfg *config.Config,
	integrator goaffpro.GoAffProIntegrator,
	sheetStore spreadsheet.Store,
) Reporter {
	return &Service{
		cfg:      cfg,
		goaffpro: integrator,
		sheets:   sheetStore,
	}
}

func (s *Service) SyncReport(ctx context.Context, filters *domain.ReportFilters) (*domain.AffiliateReport, error) {
	if filters == nil {
		filters = &domain.ReportFilters{}
	}

	logger := log.ForContext(ctx)

	var (
		affiliates    []goaffprodomain.Affiliate
		orders        []goaffprodomain.Order
		affiliatesErr error
		ordersErr     error
	)

	// As duas buscas não dependem uma da outra.
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		affiliates, affiliatesErr = s.goaffpro.FetchAffiliates(ctx, filters.AffiliatesSince)
	}()

	go func() {
		defer wg.Done()
		orders, ordersErr = s.goaffpro.FetchOrders(ctx, filters.OrdersSince)
	}()

	wg.Wait()

	if affiliatesErr != nil {
		logger.WithError(affiliatesErr).Error("report: failed to fetch affiliates from GoAffPro")
		return nil, &UpstreamFetchError{Err: errors.Wrap(affiliatesErr, "erro ao buscar afiliados no GoAffPro")}
	}

	if ordersErr != nil {
		logger.WithError(ordersErr).Error("report: failed to fetch orders from GoAffPro")
		return nil, &UpstreamFetchError{Err: errors.Wrap(ordersErr, "erro ao buscar pedidos no GoAffPro")}
	}

	logger.WithFields(log.Fields{
		"affiliates": len(affiliates),
		"orders":     len(orders),
	}).Info("report: collections fetched from GoAffPro")

	report := s.buildReport(affiliates, orders)

	if err := s.persistRows(ctx, report.Affiliates); err != nil {
		return nil, err
	}

	return report, nil
}

// buildReport monta o relatório completo a partir das duas coleções. É a parte
// puramente computacional do pipeline: sem I/O, determinística para a mesma
// entrada.
func (s *Service) buildReport(affiliates []goaffprodomain.Affiliate, orders []goaffprodomain.Order) *domain.AffiliateReport {
	ordersByAffiliate := groupOrdersByAffiliate(orders)

	summaries := make([]domain.AffiliateSummary, 0, len(affiliates))
	for _, affiliate := range affiliates {
		// Registros quebrados (sem id, nome, email ou código de referência)
		// são descartados; afiliados sem vendas permanecem.
		if !isReportable(affiliate) {
			continue
		}

		affOrders := ordersByAffiliate[*affiliate.ID]

		summaries = append(summaries, domain.AffiliateSummary{
			ID:           *affiliate.ID,
			Name:         *affiliate.Name,
			Email:        strings.ToLower(*affiliate.Email),
			LastSale:     formatDatePtr(lastSaleDate(affOrders)),
			FirstSale:    formatDatePtr(firstSaleDate(affOrders)),
			Revenue:      affiliate.SubtotalRevenue.Float64(),
			ReferralCode: *affiliate.RefCode,
			SalesCount:   len(affOrders),
		})
	}

	partners := affiliates
	if partners == nil {
		partners = []goaffprodomain.Affiliate{}
	}

	return &domain.AffiliateReport{
		Affiliates: summaries,
		Customers:  s.buildCustomerSummaries(orders),
		Partners:   partners,
		Tracker:    buildTracker(affiliates, orders),
	}
}

// isReportable filtra registros malformados vindos do upstream, não afiliados
// com zero vendas.
func isReportable(affiliate goaffprodomain.Affiliate) bool {
	if affiliate.ID == nil || *affiliate.ID == 0 {
		return false
	}

	for _, field := range []*string{affiliate.Name, affiliate.Email, affiliate.RefCode} {
		if field == nil || *field == "" {
			return false
		}
	}

	return true
}

// groupOrdersByAffiliate agrupa os pedidos por afiliado, preservando a ordem
// retornada pela API. Pedidos sem afiliado ficam de fora do agrupamento, mas
// continuam valendo para a agregação por cliente.
func groupOrdersByAffiliate(orders []goaffprodomain.Order) map[int64][]goaffprodomain.Order {
	grouped := make(map[int64][]goaffprodomain.Order)

	for _, order := range orders {
		if !order.HasAffiliate() {
			continue
		}

		grouped[*order.AffiliateID] = append(grouped[*order.AffiliateID], order)
	}

	return grouped
}

// customerAggregate acumula os pedidos de um cliente durante a varredura.
type customerAggregate struct {
	id         *int64
	name       *string
	email      *string
	orderCount int
	firstOrder time.Time
	lastOrder  time.Time
	hasDates   bool
	totalSale  float64
	revenue    float64
}

func (s *Service) buildCustomerSummaries(orders []goaffprodomain.Order) []domain.CustomerSummary {
	policy := domain.AccumulationPolicy(s.cfg.Report.AccumulationPolicy)

	aggregates := make(map[string]*customerAggregate)
	// A ordem de primeira aparição define a ordem da resposta.
	keys := make([]string, 0)

	for _, order := range orders {
		key, ok := resolveCustomerKey(order)
		if !ok {
			continue
		}

		createdAt := parseOrderDate(order)

		agg, exists := aggregates[key]
		if !exists {
			agg = &customerAggregate{
				id:         customerID(order),
				name:       customerName(order),
				email:      customerEmail(order),
				orderCount: 1,
				totalSale:  order.Total.Float64(),
				revenue:    order.Subtotal.Float64(),
			}
			if createdAt != nil {
				agg.firstOrder = *createdAt
				agg.lastOrder = *createdAt
				agg.hasDates = true
			}

			aggregates[key] = agg
			keys = append(keys, key)
			continue
		}

		agg.orderCount++

		if createdAt != nil {
			if !agg.hasDates {
				agg.firstOrder = *createdAt
				agg.lastOrder = *createdAt
				agg.hasDates = true
			} else {
				if createdAt.Before(agg.firstOrder) {
					agg.firstOrder = *createdAt
				}
				if createdAt.After(agg.lastOrder) {
					agg.lastOrder = *createdAt
				}
			}
		}

		// Na política first-order-only os totais ficam congelados no primeiro
		// pedido visto; só a contagem e o intervalo de datas avançam.
		if policy == domain.AccumulationSumAllOrders {
			agg.totalSale += order.Total.Float64()
			agg.revenue += order.Subtotal.Float64()
		}
	}

	summaries := make([]domain.CustomerSummary, 0, len(keys))
	for _, key := range keys {
		agg := aggregates[key]

		summary := domain.CustomerSummary{
			ID:         agg.id,
			Name:       agg.name,
			Email:      agg.email,
			OrderCount: agg.orderCount,
			TotalSale:  agg.totalSale,
			Revenue:    agg.revenue,
		}

		if agg.hasDates {
			first := utils.FormatDate(agg.firstOrder)
			last := utils.FormatDate(agg.lastOrder)
			summary.FirstOrderDate = &first
			summary.LastOrderDate = &last
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func customerID(order goaffprodomain.Order) *int64 {
	if order.Customer == nil {
		return nil
	}

	return order.Customer.ID
}

func customerName(order goaffprodomain.Order) *string {
	if order.Customer == nil {
		return nil
	}

	return order.Customer.Name
}

func customerEmail(order goaffprodomain.Order) *string {
	if order.Customer != nil && order.Customer.Email != nil {
		return order.Customer.Email
	}

	return order.CustomerEmail
}

// buildTracker deriva os marcadores de última atividade das duas coleções.
func buildTracker(affiliates []goaffprodomain.Affiliate, orders []goaffprodomain.Order) domain.Tracker {
	var latestAffiliate *time.Time

	for _, affiliate := range affiliates {
		createdAt, err := utils.ParseTimestamp(affiliate.CreatedAt)
		if err != nil {
			continue
		}

		if latestAffiliate == nil || createdAt.After(*latestAffiliate) {
			latestAffiliate = createdAt
		}
	}

	return domain.Tracker{
		Orders:     formatDatePtr(lastSaleDate(orders)),
		Affiliates: formatDatePtr(latestAffiliate),
	}
}

// persistRows aplica a política de escrita na planilha. Zero linhas significa
// nenhuma escrita.
func (s *Service) persistRows(ctx context.Context, summaries []domain.AffiliateSummary) error {
	logger := log.ForContext(ctx)

	if len(summaries) == 0 {
		logger.Info("report: no affiliate rows to persist, skipping sheet write")
		return nil
	}

	rows := buildSheetRows(summaries)
	spreadsheetID := s.cfg.Sheets.SpreadsheetID
	sheetName := s.cfg.Sheets.SheetName

	existing, err := s.sheets.ReadRows(ctx, spreadsheetID, sheetName)
	if err != nil {
		logger.WithError(err).Error("report: failed to read destination sheet")
		return &SheetReadError{Err: errors.Wrap(err, "erro ao ler a planilha de destino")}
	}

	if domain.SheetWritePolicy(s.cfg.Sheets.WritePolicy) == domain.SheetWriteUpsert {
		merged := mergeRowsByID(existing, rows)
		if err := s.sheets.ReplaceAll(ctx, spreadsheetID, sheetName, SheetHeader, merged); err != nil {
			logger.WithError(err).Error("report: failed to upsert rows into sheet")
			return &SheetWriteError{Err: errors.Wrap(err, "erro ao regravar a planilha de destino")}
		}

		logger.WithField("rows", len(merged)).Info("report: sheet rewritten with merged rows")
		return nil
	}

	// Política append: anexa se a aba já tem dados além do cabeçalho, caso
	// contrário regrava cabeçalho + linhas.
	if len(existing) > 1 {
		if err := s.sheets.AppendRows(ctx, spreadsheetID, sheetName, rows); err != nil {
			logger.WithError(err).Error("report: failed to append rows to sheet")
			return &SheetWriteError{Err: errors.Wrap(err, "erro ao anexar linhas na planilha de destino")}
		}

		logger.WithField("rows", len(rows)).Info("report: rows appended to sheet")
		return nil
	}

	if err := s.sheets.ReplaceAll(ctx, spreadsheetID, sheetName, SheetHeader, rows); err != nil {
		logger.WithError(err).Error("report: failed to replace sheet content")
		return &SheetWriteError{Err: errors.Wrap(err, "erro ao sobrescrever a planilha de destino")}
	}

	logger.WithField("rows", len(rows)).Info("report: sheet replaced with header and rows")
	return nil
}

// buildSheetRows espelha os campos do resumo na ordem das oito colunas do
// cabeçalho. Datas ausentes viram string vazia.
func buildSheetRows(summaries []domain.AffiliateSummary) [][]any {
	rows := make([][]any, 0, len(summaries))

	for _, summary := range summaries {
		rows = append(rows, []any{
			summary.ID,
			summary.Name,
			summary.Email,
			summary.ReferralCode,
			utils.RoundWithTwoDecimalPlace(summary.Revenue),
			summary.SalesCount,
			orEmpty(summary.FirstSale),
			orEmpty(summary.LastSale),
		})
	}

	return rows
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
