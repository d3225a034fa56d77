// Package messagesource turns a received Discord message into a MessageSource
// that can be recreated through a channel webhook.
//
// FromMessage rejects messages that can never be recreated. Everything that
// can be recreated with some loss is exposed as opt-in Check methods, so
// callers decide whether to clone on a best effort basis. Handle methods
// resolve state that needs the Discord API, and Create executes the webhook.
package messagesource

import (
	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
)

// MessageSource is a message that can be cloned.
//
// Exported fields describe the message to create and may be overridden before
// calling Create, for example to clone the message into another channel. The
// source fields describe where the message came from and are read-only.
type MessageSource struct {
	sourceID        string
	sourceChannelID string
	sourceThreadID  mo.Option[string]

	Content string
	Embeds  []*discordgo.MessageEmbed
	TTS     bool
	Flags   discordgo.MessageFlags
	// ChannelID is the destination channel, for threads this is the parent
	// channel and ThreadInfo holds the thread
	ChannelID string
	GuildID   string
	Username  string

	AvatarInfo            AvatarInfo
	ReferenceInfo         ReferenceInfo
	ThreadInfo            ThreadInfo
	ReactionInfo          ReactionInfo
	AttachmentStickerInfo AttachmentStickerInfo
	ComponentInfo         ComponentInfo

	// WebhookName is used when a webhook has to be created in the channel
	WebhookName string
	Webhook     mo.Option[*discordgo.Webhook]

	LaterMessages LaterMessagesInfo
	// Response is the message created by Create
	Response mo.Option[*discordgo.Message]
}

// SourceID returns the ID of the message this source was built from
func (s *MessageSource) SourceID() string {
	return s.sourceID
}

// SourceChannelID returns the ID of the channel (or thread) the source
// message is in
func (s *MessageSource) SourceChannelID() string {
	return s.sourceChannelID
}

// SourceThreadID returns the ID of the thread the source message is in.
// It's only known after HandleThread.
func (s *MessageSource) SourceThreadID() mo.Option[string] {
	return s.sourceThreadID
}
