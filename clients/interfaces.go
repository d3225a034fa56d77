package clients

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// DiscordClient defines the Discord API operations needed to clone messages
type DiscordClient interface {
	// Message operations
	ChannelMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
	// ChannelMessagesAfter returns up to limit messages sent after afterID, in any order
	ChannelMessagesAfter(ctx context.Context, channelID, afterID string, limit int) ([]*discordgo.Message, error)

	// Channel operations
	Channel(ctx context.Context, channelID string) (*discordgo.Channel, error)
	StartThread(ctx context.Context, params StartThreadParams) (*discordgo.Channel, error)

	// Webhook operations
	ChannelWebhooks(ctx context.Context, channelID string) ([]*discordgo.Webhook, error)
	CreateWebhook(ctx context.Context, channelID, name string) (*discordgo.Webhook, error)
	ExecuteWebhook(ctx context.Context, webhook *discordgo.Webhook, params ExecuteWebhookParams) (*discordgo.Message, error)

	// Reaction operations
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
}
