package accounts

import "github.com/elC0mpa/aws-reservations/model"

type service struct {
	path string
}

type AccountsService interface {
	GetAccounts() ([]model.Account, error)
}
