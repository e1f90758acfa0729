package goaffproclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
)

const orderFields = "id,affiliate_id,customer,customer_email,total,subtotal,created"

// OrdersResponse tolera o envelope vir tanto em "orders" quanto em "data".
type OrdersResponse struct {
	Orders []goaffprodomain.Order `json:"orders,omitempty"`
	Data   []goaffprodomain.Order `json:"data,omitempty"`
}

func (r OrdersResponse) Items() []goaffprodomain.Order {
	if r.Orders != nil {
		return r.Orders
	}

	if r.Data != nil {
		return r.Data
	}

	return []goaffprodomain.Order{}
}

func (c *GoAffProClient) GetOrders(ctx context.Context, since string) (OrdersResponse, error) {
	var response OrdersResponse

	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.GoAffPro.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/admin/orders")

	query := endpoint.Query()
	query.Set("fields", orderFields)
	if since != "" {
		query.Set("created_at_min", since)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-GOAFFPRO-ACCESS-TOKEN", c.config.GoAffPro.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
