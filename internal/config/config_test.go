package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err, "a missing config file must not be an error")

	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Mongo.URI)
	assert.Equal(t, "sales", cfg.Mongo.SalesDB)
	assert.Equal(t, "reports", cfg.Mongo.ReportsDB)

	assert.Equal(t, 180, cfg.Sales.DaysBack)
	assert.Equal(t, 80, cfg.Sales.WeekdayBaseOrders)
	assert.Equal(t, 40, cfg.Sales.WeekendBaseOrders)
	assert.Equal(t, 200, cfg.Sales.ExtraCustomers)

	assert.Equal(t, 6, cfg.Reports.Hours)
	assert.Equal(t, 120, cfg.Reports.RunsPerHour)

	assert.Greater(t, cfg.Sales.WeekdayBaseOrders, cfg.Sales.WeekendBaseOrders,
		"weekday baseline must exceed weekend baseline")
}

func TestLoadConfigServerDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Greater(t, cfg.Mongo.ConnectTimeout.Seconds(), 0.0)
}
