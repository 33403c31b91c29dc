package model

// Account is one configured cloud account and the regions to reconcile in it.
type Account struct {
	Name    string   `yaml:"name"`
	Profile string   `yaml:"profile"`
	Regions []string `yaml:"regions"`
}

// AccountInfo represents resolved cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}
