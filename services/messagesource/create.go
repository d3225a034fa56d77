package messagesource

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"messagecloner/clients"
	"messagecloner/utils"
)

// DefaultWebhookName is the name of webhooks created by Create
const DefaultWebhookName = "Message Cloner"

// Flags webhooks are allowed to set
const webhookFlags = discordgo.MessageFlagsSuppressEmbeds | discordgo.MessageFlagsSuppressNotifications

// Create executes a webhook in ChannelID to recreate the message.
//
// The first webhook in the channel that the bot can execute is used, one named
// WebhookName is created if there's none. The bot needs the Manage Webhooks
// permission, and Send TTS Messages, Mention Everyone and Use External Emojis
// for the message to be recreated faithfully.
//
// Replies are always dropped since webhook messages can't reply. Nothing is
// retried, errors from the Discord API wrap core.ErrHTTP and invalid usernames
// or webhook names return core.ErrValidation.
//
// Panics if a webhook is created without a token.
func (s *MessageSource) Create(ctx context.Context, client clients.DiscordClient) error {
	log.Printf("📋 Starting to create message from source %s in channel %s", s.sourceID, s.ChannelID)

	if err := validateUsername(s.Username); err != nil {
		return err
	}
	if err := validateContent(s.Content); err != nil {
		return err
	}

	webhook, err := s.webhook(ctx, client)
	if err != nil {
		return err
	}

	response, err := client.ExecuteWebhook(ctx, webhook, clients.ExecuteWebhookParams{
		Content:    s.Content,
		Username:   s.Username,
		AvatarURL:  s.AvatarInfo.AvatarURL(),
		Embeds:     s.Embeds,
		TTS:        s.TTS,
		Flags:      s.Flags & webhookFlags,
		Components: s.ComponentInfo.URLComponents,
		ThreadID:   ThreadID(s.ThreadInfo),
	})
	if err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	s.Response = mo.Some(response)
	s.LaterMessages.IsSourceCreated = true

	log.Printf("📋 Completed successfully - created message %s from source %s", response.ID, s.sourceID)
	return nil
}

// webhook returns the cached webhook if it's in ChannelID, otherwise it finds
// or creates one and caches it
func (s *MessageSource) webhook(ctx context.Context, client clients.DiscordClient) (*discordgo.Webhook, error) {
	if webhook, ok := s.Webhook.Get(); ok && webhook.ChannelID == s.ChannelID {
		return webhook, nil
	}

	webhooks, err := client.ChannelWebhooks(ctx, s.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel webhooks: %w", err)
	}

	// Only webhooks created by the bot come with a token
	for _, webhook := range webhooks {
		if webhook.Token != "" {
			s.Webhook = mo.Some(webhook)
			return webhook, nil
		}
	}

	if err := validateWebhookName(s.WebhookName); err != nil {
		return nil, err
	}

	webhook, err := client.CreateWebhook(ctx, s.ChannelID, s.WebhookName)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}
	utils.AssertInvariant(webhook.Token != "", "webhook created by the bot has no token")

	s.Webhook = mo.Some(webhook)
	return webhook, nil
}
