package goaffproclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/affiliate-insights-api/internal/config"
)

type Client interface {
	GetAffiliates(ctx context.Context, since string) (AffiliatesResponse, error)
	GetOrders(ctx context.Context, since string) (OrdersResponse, error)
}

type GoAffProClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do GoAffPro.
func NewClient(cfg *config.Config) Client {
	return &GoAffProClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
