package goaffpro

import (
	"context"

	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/goaffproclient"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
)

// GoAffProIntegrator expõe as coleções do GoAffPro já desembrulhadas do
// envelope da API. Falhas de transporte são propagadas sem retry.
type GoAffProIntegrator interface {
	FetchAffiliates(ctx context.Context, since string) ([]goaffprodomain.Affiliate, error)
	FetchOrders(ctx context.Context, since string) ([]goaffprodomain.Order, error)
}

type GoAffProService struct {
	cfg    *config.Config
	Client goaffproclient.Client
}

func New(cfg *config.Config, client goaffproclient.Client) GoAffProIntegrator {
	return &GoAffProService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoAffProService) FetchAffiliates(ctx context.Context, since string) ([]goaffprodomain.Affiliate, error) {
	resp, err := s.Client.GetAffiliates(ctx, since)
	if err != nil {
		return nil, err
	}

	return resp.Items(), nil
}

func (s *GoAffProService) FetchOrders(ctx context.Context, since string) ([]goaffprodomain.Order, error) {
	resp, err := s.Client.GetOrders(ctx, since)
	if err != nil {
		return nil, err
	}

	return resp.Items(), nil
}
