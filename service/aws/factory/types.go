package awsfactory

import (
	"github.com/rs/zerolog"

	awsconfig "github.com/elC0mpa/aws-reservations/service/aws/config"
)

type factoryService struct {
	cfgService awsconfig.ConfigService
	logger     zerolog.Logger
}
