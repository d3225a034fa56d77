package clone

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"messagecloner/clients"
	"messagecloner/config"
	"messagecloner/core"
	"messagecloner/services/messagesource"
)

// CloneOptions selects what happens to parts of a message that can't be
// recreated exactly
type CloneOptions struct {
	// Strict fails the clone instead of dropping components, replies,
	// stickers, reactions or attachments that aren't handled
	Strict bool
	// LaterMessages clones the messages sent after the message too
	LaterMessages bool
	// Reactions re-adds the message's reactions as the bot
	Reactions bool
	// AttachmentsAsLinks appends attachment URLs to the content
	AttachmentsAsLinks bool
}

type CloneRequest struct {
	SourceChannelID string
	MessageID       string
	// DestinationChannelID defaults to the source channel
	DestinationChannelID string
	Options              CloneOptions
}

type CloneResult struct {
	CloneID string
	Message *discordgo.Message
	// LaterMessages is the number of later messages cloned
	LaterMessages int
}

// CloneUseCase clones Discord messages through channel webhooks
type CloneUseCase struct {
	discordClient clients.DiscordClient
	webhookName   string
}

// NewCloneUseCase creates a new instance of CloneUseCase
func NewCloneUseCase(discordClient clients.DiscordClient, discordConfig config.DiscordConfig) *CloneUseCase {
	webhookName := discordConfig.WebhookName
	if webhookName == "" {
		webhookName = messagesource.DefaultWebhookName
	}
	return &CloneUseCase{
		discordClient: discordClient,
		webhookName:   webhookName,
	}
}

func (u *CloneUseCase) CloneMessage(ctx context.Context, request CloneRequest) (*CloneResult, error) {
	cloneID := core.NewID("cln")
	destinationChannelID := request.DestinationChannelID
	if destinationChannelID == "" {
		destinationChannelID = request.SourceChannelID
	}
	log.Printf("📋 Starting to clone message %s from channel %s to channel %s (clone %s)",
		request.MessageID, request.SourceChannelID, destinationChannelID, cloneID)

	// Step 1: Fetch the message
	message, err := u.fetchMessage(ctx, request.SourceChannelID, request.MessageID)
	if err != nil {
		log.Printf("❌ Failed to fetch message %s: %v", request.MessageID, err)
		return nil, err
	}

	// Step 2: Build the source and point it at the destination
	source, err := messagesource.FromMessage(message)
	if err != nil {
		log.Printf("❌ Message %s can't be cloned: %v", request.MessageID, err)
		return nil, fmt.Errorf("failed to build message source: %w", err)
	}
	source.ChannelID = destinationChannelID
	source.WebhookName = u.webhookName

	// Step 3: Check what would be lost
	if err := checkSource(source, request.Options); err != nil {
		log.Printf("❌ Message %s can't be cloned faithfully: %v", request.MessageID, err)
		return nil, err
	}

	// Step 4: Resolve threads and attachments
	if err := source.HandleThread(ctx, u.discordClient); err != nil {
		return nil, fmt.Errorf("failed to handle thread: %w", err)
	}
	if threadID, ok := messagesource.ThreadID(source.ThreadInfo).Get(); ok {
		log.Printf("🧵 Cloning into thread %s of channel %s", threadID, source.ChannelID)
	}
	if request.Options.AttachmentsAsLinks {
		if err := source.HandleAttachmentLink(); err != nil {
			return nil, fmt.Errorf("failed to link attachments: %w", err)
		}
	}

	// Step 5: Fetch the messages sent after it, before the clone becomes one of them
	if request.Options.LaterMessages {
		if err := u.fetchLaterMessages(ctx, source, request.Options); err != nil {
			return nil, err
		}
	}

	// Step 6: Create the message
	if err := source.Create(ctx, u.discordClient); err != nil {
		log.Printf("❌ Failed to create message for clone %s: %v", cloneID, err)
		return nil, err
	}
	response := source.Response.MustGet()

	// Step 7: Follow-ups on the created message
	if err := source.HandleThreadCreated(ctx, u.discordClient); err != nil {
		return nil, fmt.Errorf("failed to recreate thread: %w", err)
	}
	if request.Options.Reactions {
		if err := source.HandleReaction(ctx, u.discordClient); err != nil {
			return nil, fmt.Errorf("failed to add reactions: %w", err)
		}
	}

	// Step 8: Clone the later messages with the same options
	laterMessages := 0
	if request.Options.LaterMessages {
		hooks := messagesource.LaterMessageHooks{
			BeforeCreate: func(later *messagesource.MessageSource) error {
				return prepareSource(later, request.Options)
			},
		}
		if request.Options.Reactions {
			hooks.AfterCreate = func(ctx context.Context, later *messagesource.MessageSource) error {
				return later.HandleReaction(ctx, u.discordClient)
			}
		}
		if err := source.HandleLaterMessages(ctx, u.discordClient, hooks); err != nil {
			log.Printf("⚠️ Message %s was cloned but its later messages weren't: %v", request.MessageID, err)
			return nil, err
		}
		laterMessages = len(source.LaterMessages.Messages)
	}

	log.Printf("📋 Completed successfully - cloned message %s as %s (clone %s)", request.MessageID, response.ID, cloneID)
	return &CloneResult{
		CloneID:       cloneID,
		Message:       response,
		LaterMessages: laterMessages,
	}, nil
}

// fetchMessage gets the message, filling in the guild that REST responses leave out
func (u *CloneUseCase) fetchMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	message, err := u.discordClient.ChannelMessage(ctx, channelID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if message.GuildID != "" {
		return message, nil
	}

	channel, err := u.discordClient.Channel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	message.GuildID = channel.GuildID
	return message, nil
}

// fetchLaterMessages fetches the later messages and checks that each of them
// can be cloned with the options, so nothing is created when one can't
func (u *CloneUseCase) fetchLaterMessages(
	ctx context.Context,
	source *messagesource.MessageSource,
	options CloneOptions,
) error {
	if err := source.FetchLaterMessages(ctx, u.discordClient); err != nil {
		return err
	}
	log.Printf("🔍 Found %d later messages of message %s", len(source.LaterMessages.Messages), source.SourceID())

	for _, message := range source.LaterMessages.Messages {
		later, err := source.LaterMessageSource(message)
		if err != nil {
			return err
		}
		if err := prepareSource(later, options); err != nil {
			return fmt.Errorf("later message %s can't be cloned: %w", message.ID, err)
		}
	}
	return nil
}

// prepareSource runs the checks of the options and links attachments
func prepareSource(source *messagesource.MessageSource, options CloneOptions) error {
	if err := checkSource(source, options); err != nil {
		return err
	}
	if options.AttachmentsAsLinks {
		if err := source.HandleAttachmentLink(); err != nil {
			return fmt.Errorf("failed to link attachments: %w", err)
		}
	}
	return nil
}

func checkSource(source *messagesource.MessageSource, options CloneOptions) error {
	if !options.Strict {
		return nil
	}

	checks := []func() error{
		source.CheckComponent,
		source.CheckReference,
		source.CheckSticker,
	}
	if !options.Reactions {
		checks = append(checks, source.CheckReaction)
	}
	if !options.AttachmentsAsLinks {
		checks = append(checks, source.CheckAttachment)
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
