package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service"
	"github.com/elC0mpa/aws-reservations/service/accounts"
	"github.com/elC0mpa/aws-reservations/service/aggregator"
	"github.com/elC0mpa/aws-reservations/service/cache"
)

const (
	providerName = "aws"
	agentType    = "reservation-report-caching-agent"

	defaultWorkers = 4
)

func NewService(accountsService accounts.AccountsService, factory service.ClientFactory, cacheService cache.CacheService, logger zerolog.Logger, workers int) *agentService {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &agentService{
		accountsService: accountsService,
		factory:         factory,
		cacheService:    cacheService,
		logger:          logger,
		workers:         workers,
	}
}

func (s *agentService) ProviderName() string {
	return providerName
}

func (s *agentService) AgentType() string {
	return agentType
}

// LoadData runs one reconciliation cycle: it fans the account/region pairs out
// over a bounded worker pool, merges each pair's tally into one aggregate, and
// publishes the resulting report as the single "latest" entry of the
// reservation-reports namespace. A failing pair is skipped with a warning; only
// a publish failure aborts the run (the scheduler retries on the next tick).
func (s *agentService) LoadData(ctx context.Context) (map[string][]model.CacheEntry, error) {
	logger := s.logger.With().Str("run_id", uuid.NewString()).Logger()

	accountList, err := s.accountsService.GetAccounts()
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	agg := aggregator.NewService()
	start := time.Now().UTC()

	group := new(errgroup.Group)
	group.SetLimit(s.workers)

	for _, account := range accountList {
		if !s.checkIdentity(ctx, logger, account) {
			continue
		}

		for _, region := range account.Regions {
			group.Go(func() error {
				s.collectPair(ctx, logger, account, region, agg)
				return nil
			})
		}
	}

	// Workers never return errors; failed pairs are dropped per the failure
	// semantics and the report stays publishable.
	_ = group.Wait()

	end := time.Now().UTC()
	report := agg.Report(start, end)

	entry := model.CacheEntry{
		ID: model.LatestReportID,
		Attributes: map[string]any{
			"report": report,
		},
	}

	if err := s.cacheService.ReplaceAll(ctx, model.ReservationReportNamespace, []model.CacheEntry{entry}); err != nil {
		return nil, fmt.Errorf("publishing reservation report: %w", err)
	}

	logger.Info().
		Int("reservations", len(report.Reservations)).
		Dur("elapsed", end.Sub(start)).
		Msg("published reservation report")

	return map[string][]model.CacheEntry{
		model.ReservationReportNamespace: {entry},
	}, nil
}

// checkIdentity resolves the account's caller identity once per run. A failure
// here means credentials are unusable for every region of the account, so the
// whole account is skipped.
func (s *agentService) checkIdentity(ctx context.Context, logger zerolog.Logger, account model.Account) bool {
	identity, err := s.factory.Identity(ctx, account)
	if err != nil {
		logger.Warn().Err(err).Str("account", account.Name).Msg("skipping account: client setup failed")
		return false
	}

	info, err := identity.GetAccountInfo(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("account", account.Name).Msg("skipping account: identity check failed")
		return false
	}

	logger.Debug().Str("account", account.Name).Str("account_id", info.AccountID).Msg("resolved account identity")
	return true
}

// collectPair gathers reserved capacity and usage for one account/region into
// a local tally and merges it. Any failure drops the pair's contribution
// without touching the shared aggregate.
func (s *agentService) collectPair(ctx context.Context, logger zerolog.Logger, account model.Account, region string, agg aggregator.AggregatorService) {
	pairLogger := logger.With().Str("account", account.Name).Str("region", region).Logger()

	inventory, err := s.factory.Inventory(ctx, account, region)
	if err != nil {
		pairLogger.Warn().Err(err).Msg("skipping account/region: client setup failed")
		return
	}

	tally := aggregator.NewTally()

	if err := inventory.CollectReservations(ctx, tally); err != nil {
		pairLogger.Warn().Err(err).Msg("skipping account/region: reserved capacity query failed")
		return
	}

	if err := inventory.CollectUsage(ctx, tally); err != nil {
		pairLogger.Warn().Err(err).Msg("skipping account/region: instance query failed")
		return
	}

	agg.Merge(tally)
	pairLogger.Debug().Int("keys", tally.Size()).Msg("merged account/region tally")
}
