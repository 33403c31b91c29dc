package awsec2

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-reservations/model"
	"github.com/elC0mpa/aws-reservations/service/aggregator"
)

// ErrTooManyPages means the instance pagination never ran out of continuation
// tokens within the page budget.
var ErrTooManyPages = errors.New("instance pagination did not terminate")

// maxInstancePages caps the DescribeInstances loop so a misbehaving endpoint
// cannot keep the collector spinning forever.
const maxInstancePages = 1000

// nonTerminalStates are the instance states counted as usage.
var nonTerminalStates = []string{"pending", "running", "shutting-down", "stopping", "stopped"}

func NewService(awsconfig aws.Config, logger zerolog.Logger) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
		logger: logger,
	}
}

// CollectReservations folds every active, Heavy Utilization reserved instance
// into the tally under its (zone, os, instanceType) key. The query filter is
// fixed; records in any other state or offering are invisible to the report.
// DescribeReservedInstances returns the full result set in one call, so there
// is no pagination on this path.
func (s *service) CollectReservations(ctx context.Context, tally *aggregator.Tally) error {
	input := &ec2.DescribeReservedInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"active"},
			},
			{
				Name:   aws.String("offering-type"),
				Values: []string{"Heavy Utilization"},
			},
		},
	}

	output, err := s.client.DescribeReservedInstances(ctx, input)
	if err != nil {
		return fmt.Errorf("describing reserved instances: %w", err)
	}

	for _, reserved := range output.ReservedInstances {
		description := string(reserved.ProductDescription)
		os, known := model.ClassifyProduct(description)
		if !known {
			s.logger.Error().
				Str("productDescription", description).
				Str("reservedInstancesId", aws.ToString(reserved.ReservedInstancesId)).
				Msg("unrecognized product description, aggregating as UNKNOWN")
		}

		key := model.ReservationKey{
			AvailabilityZone: aws.ToString(reserved.AvailabilityZone),
			Os:               os,
			InstanceType:     string(reserved.InstanceType),
		}
		tally.AddReserved(key, int(aws.ToInt32(reserved.InstanceCount)))
	}

	return nil
}

// CollectUsage counts every instance in a non-terminal state under its
// (zone, os, instanceType) key, following continuation tokens until the
// provider stops returning them.
func (s *service) CollectUsage(ctx context.Context, tally *aggregator.Tally) error {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: nonTerminalStates,
			},
		},
	}

	for page := 1; ; page++ {
		if page > maxInstancePages {
			return fmt.Errorf("%w after %d pages", ErrTooManyPages, maxInstancePages)
		}

		output, err := s.client.DescribeInstances(ctx, input)
		if err != nil {
			return fmt.Errorf("describing instances (page %d): %w", page, err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				var zone string
				if instance.Placement != nil {
					zone = aws.ToString(instance.Placement.AvailabilityZone)
				}

				key := model.ReservationKey{
					AvailabilityZone: zone,
					Os:               model.ClassifyPlatform(string(instance.Platform)),
					InstanceType:     string(instance.InstanceType),
				}
				tally.AddUsed(key)
			}
		}

		if output.NextToken == nil {
			return nil
		}
		input.NextToken = output.NextToken
	}
}
