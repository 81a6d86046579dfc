package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to defaults without a config file", func(t *testing.T) {
		// when
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.NoError(t, err)
		assert.Equal(t, ":8181", cfg.Addr)
		assert.True(t, cfg.Frontend.Enabled)
		assert.Equal(t, float64(1000), cfg.Wallet.MonthlyBudget)
		assert.Equal(t, 3, cfg.Wallet.MonthWindow)
		assert.Equal(t, 1500, cfg.CardLink.ConnectDelayMs)
	})

	t.Run("should load values from a YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "addr: \":9090\"\nwallet:\n  monthlybudget: 2500\n  monthwindow: 6\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		cfg, err := Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, float64(2500), cfg.Wallet.MonthlyBudget)
		assert.Equal(t, 6, cfg.Wallet.MonthWindow)
		// untouched keys keep their defaults
		assert.Equal(t, 1500, cfg.CardLink.ConnectDelayMs)
	})

	t.Run("should let environment variables win over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o600))
		t.Setenv("WALLET_ADDR", ":7070")
		t.Setenv("WALLET_CARDLINK_CONNECTDELAYMS", "0")

		// when
		cfg, err := Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
		assert.Equal(t, 0, cfg.CardLink.ConnectDelayMs)
	})
}
