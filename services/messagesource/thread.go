package messagesource

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"messagecloner/clients"
	"messagecloner/core"
)

const defaultAutoArchiveDuration = 1440

// ThreadInfo describes the thread the message is created in.
// It is one of ThreadUnknown, ThreadKnown or ThreadCreatedUnknown and only
// changes through ResolveThread.
type ThreadInfo interface {
	isThreadInfo()
}

// ThreadUnknown means it isn't known yet whether the channel is a thread
type ThreadUnknown struct{}

// ThreadKnown means the thread is resolved, ID is absent when the message
// isn't created in a thread
type ThreadKnown struct {
	ID mo.Option[string]
}

// ThreadCreatedUnknown means a thread was started from the source message,
// Thread is the snapshot received with the message
type ThreadCreatedUnknown struct {
	Thread *discordgo.Channel
}

func (ThreadUnknown) isThreadInfo()        {}
func (ThreadKnown) isThreadInfo()          {}
func (ThreadCreatedUnknown) isThreadInfo() {}

// ThreadID returns the thread's ID if it's known
func ThreadID(info ThreadInfo) mo.Option[string] {
	switch info := info.(type) {
	case ThreadKnown:
		return info.ID
	case ThreadUnknown, ThreadCreatedUnknown, nil:
	}
	return mo.None[string]()
}

// ResolveThread moves info to ThreadKnown with the given thread ID.
// Resolving happens once, resolving a ThreadKnown returns core.ErrThreadResolved.
func ResolveThread(info ThreadInfo, threadID mo.Option[string]) (ThreadInfo, error) {
	switch info.(type) {
	case ThreadUnknown, ThreadCreatedUnknown, nil:
		return ThreadKnown{ID: threadID}, nil
	case ThreadKnown:
		return info, core.ErrThreadResolved
	}
	return info, fmt.Errorf("unknown thread info %T", info)
}

func newThreadInfo(message *discordgo.Message) ThreadInfo {
	if message.Thread != nil {
		return ThreadCreatedUnknown{Thread: message.Thread}
	}
	return ThreadUnknown{}
}

// HandleThread resolves whether ChannelID is a thread, routing the message
// to the thread's parent channel if it is.
//
// Returns core.ErrSourceThread if the source is the first message of a forum
// post, which can't be created by a webhook without creating a new post.
//
// ThreadCreatedUnknown is kept when ChannelID isn't a thread, call
// HandleThreadCreated after Create to start the thread on the new message.
func (s *MessageSource) HandleThread(ctx context.Context, client clients.DiscordClient) error {
	// Forum posts share their ID with their first message
	if s.sourceID == s.sourceChannelID {
		return core.ErrSourceThread
	}

	if _, ok := s.ThreadInfo.(ThreadKnown); ok {
		return nil
	}

	channel, err := client.Channel(ctx, s.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if !channel.IsThread() {
		if _, ok := s.ThreadInfo.(ThreadCreatedUnknown); ok {
			return nil
		}
		s.ThreadInfo, err = ResolveThread(s.ThreadInfo, mo.None[string]())
		return err
	}

	if channel.ID == s.sourceChannelID {
		s.sourceThreadID = mo.Some(channel.ID)
	}
	s.ThreadInfo, err = ResolveThread(s.ThreadInfo, mo.Some(channel.ID))
	if err != nil {
		return err
	}
	s.ChannelID = channel.ParentID

	return nil
}

// HandleThreadCreated starts a thread on the created message if one was
// started on the source message, the thread's messages aren't cloned
func (s *MessageSource) HandleThreadCreated(ctx context.Context, client clients.DiscordClient) error {
	created, ok := s.ThreadInfo.(ThreadCreatedUnknown)
	if !ok {
		return nil
	}

	response, ok := s.Response.Get()
	if !ok {
		return core.ErrSourceNotCreated
	}

	autoArchiveDuration := defaultAutoArchiveDuration
	if created.Thread.ThreadMetadata != nil && created.Thread.ThreadMetadata.AutoArchiveDuration != 0 {
		autoArchiveDuration = created.Thread.ThreadMetadata.AutoArchiveDuration
	}

	log.Printf("📋 Starting to create thread %q on message %s", created.Thread.Name, response.ID)
	thread, err := client.StartThread(ctx, clients.StartThreadParams{
		ChannelID:           response.ChannelID,
		MessageID:           response.ID,
		Name:                created.Thread.Name,
		AutoArchiveDuration: autoArchiveDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to start thread: %w", err)
	}

	s.ThreadInfo, err = ResolveThread(s.ThreadInfo, mo.Some(thread.ID))
	if err != nil {
		return err
	}

	log.Printf("📋 Completed successfully - created thread %s", thread.ID)
	return nil
}
