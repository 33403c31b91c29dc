package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service"
	"github.com/elC0mpa/aws-reservations/service/accounts"
	"github.com/elC0mpa/aws-reservations/service/cache"
)

type agentService struct {
	accountsService accounts.AccountsService
	factory         service.ClientFactory
	cacheService    cache.CacheService
	logger          zerolog.Logger
	workers         int
}

// AgentService is the reconciliation caching agent. LoadData is invoked once
// per scheduled run and always publishes exactly one entry in the
// reservation-reports namespace.
type AgentService interface {
	ProviderName() string
	AgentType() string
	LoadData(ctx context.Context) (map[string][]model.CacheEntry, error)
}
