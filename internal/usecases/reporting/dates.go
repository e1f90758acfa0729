package reporting

import (
	"time"

	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
	"github.com/vfg2006/affiliate-insights-api/pkg/log"
	"github.com/vfg2006/affiliate-insights-api/pkg/utils"
)

// firstSaleDate retorna a menor data de criação entre os pedidos, ou nil para
// lista vazia. Timestamps que não puderem ser interpretados são ignorados.
func firstSaleDate(orders []goaffprodomain.Order) *time.Time {
	var first *time.Time

	for _, order := range orders {
		createdAt := parseOrderDate(order)
		if createdAt == nil {
			continue
		}

		if first == nil || createdAt.Before(*first) {
			first = createdAt
		}
	}

	return first
}

// lastSaleDate retorna a maior data de criação entre os pedidos, ou nil para
// lista vazia.
func lastSaleDate(orders []goaffprodomain.Order) *time.Time {
	var last *time.Time

	for _, order := range orders {
		createdAt := parseOrderDate(order)
		if createdAt == nil {
			continue
		}

		if last == nil || createdAt.After(*last) {
			last = createdAt
		}
	}

	return last
}

func parseOrderDate(order goaffprodomain.Order) *time.Time {
	createdAt, err := utils.ParseTimestamp(order.Created)
	if err != nil {
		log.L.WithFields(log.Fields{
			"created": order.Created,
		}).Warn("report: skipping order with unparseable created timestamp")
		return nil
	}

	return createdAt
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := utils.FormatDate(*t)
	return &formatted
}
