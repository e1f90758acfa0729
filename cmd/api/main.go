package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/goaffproclient"
	"github.com/vfg2006/affiliate-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/affiliate-insights-api/internal/api"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"github.com/vfg2006/affiliate-insights-api/internal/scheduler"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	goaffproClient := goaffproclient.NewClient(cfg)
	goaffproIntegrator := goaffpro.New(cfg, goaffproClient)

	sheetStore, err := spreadsheet.NewGoogleSheetsStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Google Sheets")
	}
	logrus.Info("Conexão com Google Sheets estabelecida com sucesso")

	reportService := reporting.NewService(cfg, goaffproIntegrator, sheetStore)

	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do relatório de afiliados")
	} else {
		logrus.Info("Agendador de sincronização do relatório de afiliados iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
