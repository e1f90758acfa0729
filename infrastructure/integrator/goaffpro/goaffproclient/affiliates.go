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

const affiliateFields = "id,name,email,ref_code,subtotal_revenue,created_at"

// AffiliatesResponse tolera o envelope vir tanto em "affiliates" quanto em
// "data", dependendo da versão da API.
type AffiliatesResponse struct {
	Affiliates []goaffprodomain.Affiliate `json:"affiliates,omitempty"`
	Data       []goaffprodomain.Affiliate `json:"data,omitempty"`
}

// Items retorna a primeira coleção presente no envelope, ou vazia se nenhuma.
func (r AffiliatesResponse) Items() []goaffprodomain.Affiliate {
	if r.Affiliates != nil {
		return r.Affiliates
	}

	if r.Data != nil {
		return r.Data
	}

	return []goaffprodomain.Affiliate{}
}

func (c *GoAffProClient) GetAffiliates(ctx context.Context, since string) (AffiliatesResponse, error) {
	var response AffiliatesResponse

	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.GoAffPro.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/admin/affiliates")

	// O cursor "since" é repassado como recebido; vazio significa coleção completa.
	query := endpoint.Query()
	query.Set("fields", affiliateFields)
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
