package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Account    AccountConfig  `mapstructure:"account"`
	Targets    []TargetConfig `mapstructure:"targets"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AccountConfig seeds the account on first run. Identity fields are immutable
// afterwards; balance and status live in the database from then on.
type AccountConfig struct {
	Number         string `mapstructure:"number"`
	Owner          string `mapstructure:"owner"`
	Type           string `mapstructure:"type"`
	OpeningBalance string `mapstructure:"opening_balance"`
	Currency       string `mapstructure:"currency"`
}

type TargetConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Account: AccountConfig{
			Number:         "123456",
			Owner:          "Mariam Riyad",
			Type:           "Savings",
			OpeningBalance: "1000",
			Currency:       "$",
		},
		Targets: []TargetConfig{
			{ID: "789012", Name: "Ahmed Hassan", Type: "Checking"},
			{ID: "345678", Name: "Sara Ahmed", Type: "Savings"},
			{ID: "901234", Name: "Omar Ali", Type: "Checking"},
		},
		Log: LogConfig{Level: "warn"},
	}
}
