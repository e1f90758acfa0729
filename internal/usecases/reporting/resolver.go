package reporting

import (
	"strconv"

	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
)

// resolveCustomerKey resolve a identidade do cliente por uma lista ordenada de
// candidatos opcionais: id do cliente, email do cliente, email avulso do
// pedido. O primeiro presente vence; pedidos sem nenhum candidato ficam de
// fora da agregação por cliente.
func resolveCustomerKey(order goaffprodomain.Order) (string, bool) {
	return firstPresent(
		customerIDCandidate(order),
		customerEmailCandidate(order),
		orderEmailCandidate(order),
	)
}

func firstPresent(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate, true
		}
	}

	return "", false
}

func customerIDCandidate(order goaffprodomain.Order) string {
	if order.Customer == nil || order.Customer.ID == nil || *order.Customer.ID == 0 {
		return ""
	}

	return strconv.FormatInt(*order.Customer.ID, 10)
}

func customerEmailCandidate(order goaffprodomain.Order) string {
	if order.Customer == nil || order.Customer.Email == nil {
		return ""
	}

	return *order.Customer.Email
}

func orderEmailCandidate(order goaffprodomain.Order) string {
	if order.CustomerEmail == nil {
		return ""
	}

	return *order.CustomerEmail
}
