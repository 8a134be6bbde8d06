package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"bakery/cmd"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() cmd.Config {
	return cmd.Config{
		DBHost:          "db",
		DBPort:          "5432",
		DBUser:          "bakery",
		DBPassword:      "secret",
		DBName:          "bakery",
		DBSslMode:       "disable",
		DemoDataEnabled: true,
		DemoDataSeed:    1,
		TimeZone:        "UTC",
		BcryptCost:      bcrypt.MinCost,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=db port=5432 user=bakery password=secret dbname=bakery sslmode=disable",
		testConfig().DSN(),
	)
}

func TestNewCompositionRoot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cmd.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*cmd.Config) {}},
		{name: "default bcrypt cost", mutate: func(c *cmd.Config) { c.BcryptCost = 0 }},
		{name: "unknown time zone", mutate: func(c *cmd.Config) { c.TimeZone = "Mars/Olympus_Mons" }, wantErr: true},
		{name: "bcrypt cost too high", mutate: func(c *cmd.Config) { c.BcryptCost = bcrypt.MaxCost + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.mutate(&config)

			_, err := cmd.NewCompositionRoot(config, nil, prometheus.NewRegistry(), discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		config := testConfig()
		config.DemoDataSchedule = "whenever"
		root, err := cmd.NewCompositionRoot(config, nil, prometheus.NewRegistry(), discardLogger())
		require.NoError(t, err)

		_, err = root.CreateJobManager()
		require.Error(t, err)
	})

	t.Run("demo data disabled", func(t *testing.T) {
		config := testConfig()
		config.DemoDataEnabled = false
		root, err := cmd.NewCompositionRoot(config, nil, prometheus.NewRegistry(), discardLogger())
		require.NoError(t, err)

		manager, err := root.CreateJobManager()
		require.NoError(t, err)
		// nothing to start, so the store is never touched
		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}

func TestCompositionRoot_CreateHandlers(t *testing.T) {
	root, err := cmd.NewCompositionRoot(testConfig(), nil, prometheus.NewRegistry(), discardLogger())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		root.CreateSeedDemoDataCommandHandler()
		root.CreateChangeOrderStateCommandHandler()
		root.CreateAddOrderCommentCommandHandler()
	})
}
