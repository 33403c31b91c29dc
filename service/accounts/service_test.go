package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-reservations/model"
)

func writeAccountsFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGetAccountsFromFile(t *testing.T) {
	path := writeAccountsFile(t, `
accounts:
  - name: prod
    profile: prod-readonly
    regions:
      - us-east-1
      - us-west-2
  - name: staging
    regions:
      - eu-west-1
`)

	accounts, err := NewService(path).GetAccounts()
	require.NoError(t, err)

	assert.Equal(t, []model.Account{
		{Name: "prod", Profile: "prod-readonly", Regions: []string{"us-east-1", "us-west-2"}},
		{Name: "staging", Regions: []string{"eu-west-1"}},
	}, accounts)
}

func TestGetAccountsValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "no accounts", contents: `accounts: []`},
		{name: "missing name", contents: "accounts:\n  - regions: [us-east-1]"},
		{name: "missing regions", contents: "accounts:\n  - name: prod"},
		{name: "not yaml", contents: `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAccountsFile(t, tt.contents)
			_, err := NewService(path).GetAccounts()
			assert.Error(t, err)
		})
	}
}

func TestGetAccountsMissingFile(t *testing.T) {
	_, err := NewService(filepath.Join(t.TempDir(), "nope.yaml")).GetAccounts()
	assert.Error(t, err)
}

func TestGetAccountsDefaultsFromEnv(t *testing.T) {
	t.Setenv("AWS_PROFILE", "sandbox")
	t.Setenv("AWS_REGION", "eu-central-1")

	accounts, err := NewService("").GetAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, model.Account{Name: "default", Profile: "sandbox", Regions: []string{"eu-central-1"}}, accounts[0])
}

func TestGetAccountsDefaultRegionFallback(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")

	accounts, err := NewService("").GetAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, []string{"us-east-1"}, accounts[0].Regions)
}
