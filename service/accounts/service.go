package accounts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elC0mpa/aws-reservations/model"
)

const defaultRegion = "us-east-1"

type accountsFile struct {
	Accounts []model.Account `yaml:"accounts"`
}

func NewService(path string) *service {
	return &service{path: path}
}

// GetAccounts loads the configured accounts and their regions. Without a
// config file it falls back to a single account built from AWS_PROFILE and
// AWS_REGION, which covers the common one-account setup.
func (s *service) GetAccounts() ([]model.Account, error) {
	if s.path == "" {
		return []model.Account{defaultAccount()}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading accounts file: %w", err)
	}

	var file accountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing accounts file %s: %w", s.path, err)
	}

	if len(file.Accounts) == 0 {
		return nil, fmt.Errorf("accounts file %s defines no accounts", s.path)
	}

	for i, account := range file.Accounts {
		if account.Name == "" {
			return nil, fmt.Errorf("accounts file %s: account %d has no name", s.path, i)
		}
		if len(account.Regions) == 0 {
			return nil, fmt.Errorf("accounts file %s: account %q has no regions", s.path, account.Name)
		}
	}

	return file.Accounts, nil
}

func defaultAccount() model.Account {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultRegion
	}

	return model.Account{
		Name:    "default",
		Profile: os.Getenv("AWS_PROFILE"),
		Regions: []string{region},
	}
}
