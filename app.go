package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service/accounts"
	"github.com/elC0mpa/aws-reservations/service/agent"
	awsconfig "github.com/elC0mpa/aws-reservations/service/aws/config"
	awsfactory "github.com/elC0mpa/aws-reservations/service/aws/factory"
	"github.com/elC0mpa/aws-reservations/service/cache"
	"github.com/elC0mpa/aws-reservations/service/flag"
	"github.com/elC0mpa/aws-reservations/utils"
)

func main() {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	cacheService, err := buildCache(flags)
	if err != nil {
		panic(err)
	}

	cfgService := awsconfig.NewService()
	accountsService := accounts.NewService(flags.ConfigPath)
	factory := awsfactory.NewService(cfgService, logger)

	agentService := agent.NewService(accountsService, factory, cacheService, logger, flags.Workers)

	interactive := flags.Table || flags.Chart
	if flags.Once || interactive {
		runOnce(agentService, flags, interactive)
		return
	}

	logger.Info().
		Str("provider", agentService.ProviderName()).
		Str("agent", agentService.AgentType()).
		Dur("interval", flags.Interval).
		Msg("starting reservation report agent")

	ticker := time.NewTicker(flags.Interval)
	defer ticker.Stop()

	for {
		if _, err := agentService.LoadData(context.Background()); err != nil {
			// A failed run leaves the previous snapshot in place; the next
			// tick retries.
			logger.Error().Err(err).Msg("report run failed")
		}
		<-ticker.C
	}
}

func buildCache(flags model.Flags) (cache.CacheService, error) {
	if flags.DBPath == "" {
		return cache.NewMemoryService(), nil
	}

	sqlite, err := cache.NewSQLiteService(flags.DBPath)
	if err != nil {
		return nil, err
	}
	return sqlite, nil
}

func runOnce(agentService agent.AgentService, flags model.Flags, interactive bool) {
	if interactive {
		utils.DrawBanner()
		utils.StartSpinner()
	}

	result, err := agentService.LoadData(context.Background())

	if interactive {
		utils.StopSpinner()
	}
	if err != nil {
		panic(err)
	}

	entries := result[model.ReservationReportNamespace]
	if len(entries) == 0 {
		os.Exit(1)
	}

	report, ok := entries[0].Attributes["report"].(model.ReservationReport)
	if !ok {
		os.Exit(1)
	}

	if flags.Table {
		utils.DrawReservationTable(report)
	}
	if flags.Chart {
		utils.DrawUtilizationChart(report)
	}
}
