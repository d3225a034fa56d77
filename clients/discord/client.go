package discord

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"messagecloner/clients"
	"messagecloner/core"
)

// DiscordClient implements the clients.DiscordClient interface on top of discordgo's REST API
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a Discord client authenticated with the given bot token
func NewDiscordClient(httpClient *http.Client, botToken string) (clients.DiscordClient, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Client = httpClient
	// Retrying is left to callers
	session.ShouldRetryOnRateLimit = false
	session.MaxRestRetries = 0

	return &DiscordClient{session: session}, nil
}

func requestError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, core.ErrHTTP, err)
}

func (c *DiscordClient) ChannelMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	message, err := c.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, requestError(fmt.Sprintf("fetch message %s in channel %s", messageID, channelID), err)
	}
	return message, nil
}

func (c *DiscordClient) ChannelMessagesAfter(
	ctx context.Context,
	channelID, afterID string,
	limit int,
) ([]*discordgo.Message, error) {
	messages, err := c.session.ChannelMessages(channelID, limit, "", afterID, "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, requestError(fmt.Sprintf("fetch messages after %s in channel %s", afterID, channelID), err)
	}
	return messages, nil
}

func (c *DiscordClient) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	channel, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, requestError(fmt.Sprintf("fetch channel %s", channelID), err)
	}
	return channel, nil
}

func (c *DiscordClient) StartThread(ctx context.Context, params clients.StartThreadParams) (*discordgo.Channel, error) {
	thread, err := c.session.MessageThreadStart(
		params.ChannelID,
		params.MessageID,
		params.Name,
		params.AutoArchiveDuration,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, requestError(fmt.Sprintf("start thread on message %s", params.MessageID), err)
	}
	log.Printf("🧵 Started thread %s on message %s", thread.ID, params.MessageID)
	return thread, nil
}

func (c *DiscordClient) ChannelWebhooks(ctx context.Context, channelID string) ([]*discordgo.Webhook, error) {
	webhooks, err := c.session.ChannelWebhooks(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, requestError(fmt.Sprintf("list webhooks for channel %s", channelID), err)
	}
	return webhooks, nil
}

func (c *DiscordClient) CreateWebhook(ctx context.Context, channelID, name string) (*discordgo.Webhook, error) {
	webhook, err := c.session.WebhookCreate(channelID, name, "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, requestError(fmt.Sprintf("create webhook in channel %s", channelID), err)
	}
	log.Printf("🪝 Created webhook %s in channel %s", webhook.ID, channelID)
	return webhook, nil
}

func (c *DiscordClient) ExecuteWebhook(
	ctx context.Context,
	webhook *discordgo.Webhook,
	params clients.ExecuteWebhookParams,
) (*discordgo.Message, error) {
	data := &discordgo.WebhookParams{
		Content:    params.Content,
		Username:   params.Username,
		AvatarURL:  params.AvatarURL,
		TTS:        params.TTS,
		Embeds:     params.Embeds,
		Flags:      params.Flags,
		Components: params.Components,
	}

	message, err := c.session.WebhookThreadExecute(
		webhook.ID,
		webhook.Token,
		true,
		params.ThreadID.OrEmpty(),
		data,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, requestError(fmt.Sprintf("execute webhook %s", webhook.ID), err)
	}
	return message, nil
}

func (c *DiscordClient) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if err := c.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return requestError(fmt.Sprintf("add reaction %s to message %s", emoji, messageID), err)
	}
	return nil
}
