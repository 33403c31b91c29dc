package awsfactory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service"
	awsconfig "github.com/elC0mpa/aws-reservations/service/aws/config"
	awssts "github.com/elC0mpa/aws-reservations/service/aws/sts"
	awsec2 "github.com/elC0mpa/aws-reservations/service/ec2"
)

// NewService returns the AWS implementation of service.ClientFactory. Each
// call resolves credentials for the account's profile, so a bad profile
// surfaces as a per-account/region failure rather than at startup.
func NewService(cfgService awsconfig.ConfigService, logger zerolog.Logger) *factoryService {
	return &factoryService{
		cfgService: cfgService,
		logger:     logger,
	}
}

func (s *factoryService) Inventory(ctx context.Context, account model.Account, region string) (service.InventoryService, error) {
	cfg, err := s.cfgService.GetAWSCfg(ctx, region, account.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading aws config for %s/%s: %w", account.Name, region, err)
	}

	logger := s.logger.With().Str("account", account.Name).Str("region", region).Logger()
	return awsec2.NewService(cfg, logger), nil
}

func (s *factoryService) Identity(ctx context.Context, account model.Account) (service.IdentityService, error) {
	if len(account.Regions) == 0 {
		return nil, fmt.Errorf("account %s has no regions", account.Name)
	}

	cfg, err := s.cfgService.GetAWSCfg(ctx, account.Regions[0], account.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading aws config for %s: %w", account.Name, err)
	}

	return awssts.NewService(cfg), nil
}
