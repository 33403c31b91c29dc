package flag

import "github.com/elC0mpa/aws-reservations/model"

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
