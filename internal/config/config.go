package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Sales   SalesConfig   `mapstructure:"sales"`
	Reports ReportsConfig `mapstructure:"reports"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	SalesDB        string        `mapstructure:"sales_db"`
	ReportsDB      string        `mapstructure:"reports_db"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type SalesConfig struct {
	DaysBack          int   `mapstructure:"days_back"`
	WeekdayBaseOrders int   `mapstructure:"weekday_base_orders"`
	WeekendBaseOrders int   `mapstructure:"weekend_base_orders"`
	ExtraCustomers    int   `mapstructure:"extra_customers"`
	RandomSeed        int64 `mapstructure:"random_seed"`
}

type ReportsConfig struct {
	Hours       int   `mapstructure:"hours"`
	RunsPerHour int   `mapstructure:"runs_per_hour"`
	RandomSeed  int64 `mapstructure:"random_seed"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Every knob is optional: a missing config file just means defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.seedgen/")
	v.AddConfigPath("/etc/seedgen/")

	// Enable environment variable override with SEEDGEN_ prefix
	v.SetEnvPrefix("SEEDGEN")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.sales_db", "sales")
	v.SetDefault("mongo.reports_db", "reports")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("sales.days_back", 180)
	v.SetDefault("sales.weekday_base_orders", 80)
	v.SetDefault("sales.weekend_base_orders", 40)
	v.SetDefault("sales.extra_customers", 200)
	v.SetDefault("sales.random_seed", 0)
	v.SetDefault("reports.hours", 6)
	v.SetDefault("reports.runs_per_hour", 120)
	v.SetDefault("reports.random_seed", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
