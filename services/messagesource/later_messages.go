package messagesource

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"messagecloner/clients"
	"messagecloner/core"
)

const laterMessagesBatchSize = 100

// LaterMessagesInfo tracks the messages sent after the source message.
//
// Cloning a message into its own channel puts the clone after messages that
// were sent later. Those messages, for example the rest of a long message
// that was split in parts, can be cloned after it to keep the order.
type LaterMessagesInfo struct {
	// Messages are in the order they were sent
	Messages []*discordgo.Message
	// IsComplete is set once every later message is fetched
	IsComplete bool
	// IsSourceCreated is set once the source message is created
	IsSourceCreated bool
	// CreatedCount is the number of Messages already created
	CreatedCount int
	// IsLaterMessageSourcesCreated is set once every later message is created
	IsLaterMessageSourcesCreated bool
}

// LaterMessageHooks run on the source of each later message.
// Either hook may be nil.
type LaterMessageHooks struct {
	// BeforeCreate may modify the source, an error stops the remaining messages
	// from being created
	BeforeCreate func(later *MessageSource) error
	// AfterCreate runs once the later message is created
	AfterCreate func(ctx context.Context, later *MessageSource) error
}

// LaterMessagesBatched fetches the next batch of later messages, setting
// IsComplete when there are no more.
//
// Later messages have to be fetched before Create, otherwise the created
// message would be one of them. Returns core.ErrSourceAlreadyCreated after Create.
func (s *MessageSource) LaterMessagesBatched(ctx context.Context, client clients.DiscordClient) error {
	if s.LaterMessages.IsSourceCreated {
		return core.ErrSourceAlreadyCreated
	}
	if s.LaterMessages.IsComplete {
		return nil
	}

	afterID := s.sourceID
	if count := len(s.LaterMessages.Messages); count > 0 {
		afterID = s.LaterMessages.Messages[count-1].ID
	}

	batch, err := client.ChannelMessagesAfter(ctx, s.sourceChannelID, afterID, laterMessagesBatchSize)
	if err != nil {
		return fmt.Errorf("failed to get later messages: %w", err)
	}

	slices.SortFunc(batch, func(a, b *discordgo.Message) int {
		return compareSnowflakes(a.ID, b.ID)
	})
	for _, message := range batch {
		// Messages sent by the cached webhook are clones, not later messages
		if webhook, ok := s.Webhook.Get(); ok && message.WebhookID != "" && message.WebhookID == webhook.ID {
			continue
		}
		s.LaterMessages.Messages = append(s.LaterMessages.Messages, message)
	}

	if len(batch) < laterMessagesBatchSize {
		s.LaterMessages.IsComplete = true
	}
	return nil
}

// FetchLaterMessages fetches all later messages
func (s *MessageSource) FetchLaterMessages(ctx context.Context, client clients.DiscordClient) error {
	for !s.LaterMessages.IsComplete {
		if err := s.LaterMessagesBatched(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

// LaterMessageSource builds the source of a later message, sharing this
// source's destination channel, webhook name and webhook. Thread routing is
// resolved by HandleLaterMessages.
func (s *MessageSource) LaterMessageSource(message *discordgo.Message) (*MessageSource, error) {
	laterMessage := *message
	if laterMessage.GuildID == "" {
		laterMessage.GuildID = s.GuildID
	}

	later, err := FromMessage(&laterMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to build source of later message %s: %w", message.ID, err)
	}

	later.ChannelID = s.ChannelID
	later.WebhookName = s.WebhookName
	later.Webhook = s.Webhook
	return later, nil
}

// HandleLaterMessages creates the later messages after the created source
// message, in the same channel and thread, using the same webhook.
//
// Later messages go through FromMessage, so one that can't be cloned stops
// the rest from being created. Messages already created are skipped when
// this is called again after a failure. Threads started on later messages
// aren't recreated.
func (s *MessageSource) HandleLaterMessages(
	ctx context.Context,
	client clients.DiscordClient,
	hooks LaterMessageHooks,
) error {
	response, ok := s.Response.Get()
	if !s.LaterMessages.IsSourceCreated || !ok {
		return core.ErrSourceNotCreated
	}
	if !s.LaterMessages.IsComplete {
		return core.ErrLaterMessagesIncomplete
	}
	if s.LaterMessages.IsLaterMessageSourcesCreated {
		return nil
	}

	// The response's channel is the thread when the message was created in one
	threadID := mo.None[string]()
	if response.ChannelID != s.ChannelID {
		threadID = mo.Some(response.ChannelID)
	}

	remaining := s.LaterMessages.Messages[s.LaterMessages.CreatedCount:]
	log.Printf("📋 Starting to create %d later messages of message %s", len(remaining), s.sourceID)
	for _, message := range remaining {
		later, err := s.LaterMessageSource(message)
		if err != nil {
			return err
		}
		later.ThreadInfo, err = ResolveThread(later.ThreadInfo, threadID)
		if err != nil {
			return err
		}

		if hooks.BeforeCreate != nil {
			if err := hooks.BeforeCreate(later); err != nil {
				return fmt.Errorf("later message %s: %w", message.ID, err)
			}
		}
		if err := later.Create(ctx, client); err != nil {
			return fmt.Errorf("failed to create later message %s: %w", message.ID, err)
		}
		s.LaterMessages.CreatedCount++
		// Later messages created a webhook if the source didn't have one cached
		s.Webhook = later.Webhook

		if hooks.AfterCreate != nil {
			if err := hooks.AfterCreate(ctx, later); err != nil {
				return fmt.Errorf("later message %s: %w", message.ID, err)
			}
		}
	}

	s.LaterMessages.IsLaterMessageSourcesCreated = true
	log.Printf("📋 Completed successfully - created later messages of message %s", s.sourceID)
	return nil
}

// compareSnowflakes orders Discord IDs by creation time
func compareSnowflakes(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return cmp.Compare(a, b)
}
