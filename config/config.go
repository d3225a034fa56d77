package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken string
	// WebhookName names webhooks created in destination channels, empty means
	// the default name
	WebhookName string
}

type AppConfig struct {
	// LockDir holds per-channel lock files, empty means the system temp dir
	LockDir string

	DiscordConfig DiscordConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		LockDir: os.Getenv("LOCK_DIR"),

		DiscordConfig: DiscordConfig{
			BotToken:    botToken,
			WebhookName: os.Getenv("WEBHOOK_NAME"),
		},
	}
	log.Printf("✅ Discord integration configured")

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}
