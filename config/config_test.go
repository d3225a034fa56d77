package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingBotToken(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_BOT_TOKEN is not set")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "test-token")
	t.Setenv("WEBHOOK_NAME", "")
	t.Setenv("LOCK_DIR", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordConfig.BotToken)
	assert.Empty(t, cfg.DiscordConfig.WebhookName)
	assert.Empty(t, cfg.LockDir)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "test-token")
	t.Setenv("WEBHOOK_NAME", "Archiver")
	t.Setenv("LOCK_DIR", "/tmp/locks")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "Archiver", cfg.DiscordConfig.WebhookName)
	assert.Equal(t, "/tmp/locks", cfg.LockDir)
}
