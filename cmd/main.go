package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/jessevdk/go-flags"

	"messagecloner/clients"
	"messagecloner/clients/discord"
	"messagecloner/config"
	"messagecloner/usecases/clone"
	"messagecloner/utils"
)

const requestTimeout = 30 * time.Second

type Options struct {
	Channel            string   `long:"channel" required:"true" description:"ID of the channel or thread the messages are in"`
	Messages           []string `long:"message" required:"true" description:"ID of a message to clone, repeat to clone several in order"`
	To                 string   `long:"to" description:"ID of the channel or thread to clone into, defaults to --channel"`
	Strict             bool     `long:"strict" description:"Fail instead of dropping parts of the message that can't be recreated"`
	LaterMessages      bool     `long:"later-messages" description:"Also clone the messages sent after each message"`
	Reactions          bool     `long:"reactions" description:"Re-add the message's reactions"`
	AttachmentsAsLinks bool     `long:"attachments-as-links" description:"Append attachment URLs to the content"`
}

type messageCloner interface {
	CloneMessage(ctx context.Context, request clone.CloneRequest) (*clone.CloneResult, error)
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	discordClient, err := discord.NewDiscordClient(&http.Client{Timeout: requestTimeout}, cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}
	cloneUseCase := clone.NewCloneUseCase(discordClient, cfg.DiscordConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	destination := opts.To
	if destination == "" {
		destination = opts.Channel
	}

	// Webhooks are listed then created in the channel owning them, two runs
	// into that channel or any of its threads could both create one
	lockChannelID, err := webhookChannelID(ctx, discordClient, destination)
	if err != nil {
		return err
	}
	channelLock, err := utils.NewChannelLock(cfg.LockDir, lockChannelID)
	if err != nil {
		return err
	}
	log.Printf("🔒 Waiting for lock on channel %s", lockChannelID)
	if err := channelLock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		if err := channelLock.Unlock(); err != nil {
			log.Printf("⚠️ Failed to release lock on channel %s: %v", lockChannelID, err)
		}
	}()

	options := clone.CloneOptions{
		Strict:             opts.Strict,
		LaterMessages:      opts.LaterMessages,
		Reactions:          opts.Reactions,
		AttachmentsAsLinks: opts.AttachmentsAsLinks,
	}
	requests := make([]clone.CloneRequest, 0, len(opts.Messages))
	for _, messageID := range opts.Messages {
		requests = append(requests, clone.CloneRequest{
			SourceChannelID:      opts.Channel,
			MessageID:            messageID,
			DestinationChannelID: destination,
			Options:              options,
		})
	}

	return cloneMessages(ctx, cloneUseCase, requests)
}

// webhookChannelID returns the channel webhooks for channelID live in, the
// parent channel for threads
func webhookChannelID(ctx context.Context, discordClient clients.DiscordClient, channelID string) (string, error) {
	channel, err := discordClient.Channel(ctx, channelID)
	if err != nil {
		return "", fmt.Errorf("failed to get destination channel: %w", err)
	}
	if channel.IsThread() {
		return channel.ParentID, nil
	}
	return channel.ID, nil
}

// cloneMessages clones the messages one at a time in order, stopping at the
// first failure so the clones stay in the same order as the messages
func cloneMessages(ctx context.Context, cloner messageCloner, requests []clone.CloneRequest) error {
	log.Printf("📋 Starting to clone %d messages", len(requests))

	// Initialize worker pool with 1 worker for sequential processing
	wp := workerpool.New(1)

	var firstErr error
	cloned := 0
	for _, request := range requests {
		request := request
		wp.Submit(func() {
			if firstErr != nil {
				return
			}
			if err := ctx.Err(); err != nil {
				firstErr = err
				return
			}

			result, err := cloner.CloneMessage(ctx, request)
			if err != nil {
				firstErr = fmt.Errorf("failed to clone message %s: %w", request.MessageID, err)
				return
			}
			cloned++
			log.Printf("✅ Cloned message %s as %s (clone %s)", request.MessageID, result.Message.ID, result.CloneID)
		})
	}
	wp.StopWait()

	if firstErr != nil {
		log.Printf("❌ Cloned %d of %d messages", cloned, len(requests))
		return firstErr
	}
	log.Printf("📋 Completed successfully - cloned %d messages", cloned)
	return nil
}
