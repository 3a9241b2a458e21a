package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/manzoorshoro/crypto-market-report/internal/application/report"
	"github.com/manzoorshoro/crypto-market-report/internal/infrastructure/http/clients"
	"github.com/manzoorshoro/crypto-market-report/internal/server"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
	"github.com/manzoorshoro/crypto-market-report/pkg/logger"
)

func main() {
	cmd := &cli.Command{
		Name:  "marketreport",
		Usage: "live crypto market report dashboard",
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "start service",
				Action: start,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func start(context.Context, *cli.Command) error {
	logg := logger.New()

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logg = logger.NewWithConfig(cfg.Logger)

	marketsClient := clients.NewCoinGeckoClient(cfg.CoinGecko, cfg.Report, logg)
	reportService := report.NewReportService(marketsClient, cfg.Report, logg)

	srv := server.New(cfg, reportService, logg)
	srv.Start()
	return nil
}
