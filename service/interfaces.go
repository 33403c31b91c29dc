package service

import (
	"context"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service/aggregator"
)

// InventoryService collects reserved capacity and running instances for one
// account/region pair into a tally.
type InventoryService interface {
	CollectReservations(ctx context.Context, tally *aggregator.Tally) error
	CollectUsage(ctx context.Context, tally *aggregator.Tally) error
}

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// ClientFactory builds the per-account/region cloud services the agent uses.
type ClientFactory interface {
	Inventory(ctx context.Context, account model.Account, region string) (InventoryService, error)
	Identity(ctx context.Context, account model.Account) (IdentityService, error)
}
