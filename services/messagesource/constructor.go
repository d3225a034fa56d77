package messagesource

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"messagecloner/core"
)

// FromMessage builds a MessageSource from a message.
//
// Messages fetched through the REST API don't have GuildID set, make sure it's
// filled in before calling this.
//
// The checks run in this order and the first failing one is returned:
//   - core.ErrRichPresence if the message is tied to an application activity
//   - core.ErrVoice if the message is a voice message
//   - core.ErrSystem if the message isn't a regular message or a reply
//   - core.ErrContentInvalid if the content is too long, which happens when the
//     author used Nitro to send more than 2000 characters
//   - core.ErrNotInGuild if the message isn't in a guild
func FromMessage(message *discordgo.Message) (*MessageSource, error) {
	if message.Activity != nil || message.Application != nil {
		return nil, core.ErrRichPresence
	}
	if message.Flags&discordgo.MessageFlagsIsVoiceMessage != 0 {
		return nil, core.ErrVoice
	}
	if message.Type != discordgo.MessageTypeDefault && message.Type != discordgo.MessageTypeReply {
		return nil, core.ErrSystem
	}
	if err := validateContent(message.Content); err != nil {
		return nil, err
	}
	if message.GuildID == "" {
		return nil, core.ErrNotInGuild
	}
	if message.Author == nil {
		return nil, fmt.Errorf("message %s has no author", message.ID)
	}

	threadInfo := newThreadInfo(message)

	return &MessageSource{
		sourceID:        message.ID,
		sourceChannelID: message.ChannelID,
		sourceThreadID:  ThreadID(threadInfo),

		Content:   message.Content,
		Embeds:    message.Embeds,
		TTS:       message.TTS,
		Flags:     message.Flags,
		ChannelID: message.ChannelID,
		GuildID:   message.GuildID,
		Username:  username(message),

		AvatarInfo:    newAvatarInfo(message),
		ReferenceInfo: resolveReference(message),
		ThreadInfo:    threadInfo,
		ReactionInfo: ReactionInfo{
			Reactions: message.Reactions,
		},
		AttachmentStickerInfo: AttachmentStickerInfo{
			Attachments: message.Attachments,
			Stickers:    message.StickerItems,
		},
		ComponentInfo: newComponentInfo(message.Components),

		WebhookName: DefaultWebhookName,
		Webhook:     mo.None[*discordgo.Webhook](),
		Response:    mo.None[*discordgo.Message](),
	}, nil
}

// username prefers the author's nickname in the guild
func username(message *discordgo.Message) string {
	if message.Member != nil && message.Member.Nick != "" {
		return message.Member.Nick
	}
	return message.Author.DisplayName()
}

func newAvatarInfo(message *discordgo.Message) AvatarInfo {
	info := AvatarInfo{
		URL:               mo.None[string](),
		UserID:            message.Author.ID,
		GuildID:           message.GuildID,
		UserDiscriminator: message.Author.Discriminator,
		UserAvatar:        message.Author.Avatar,
	}
	if message.Member != nil {
		info.MemberAvatar = message.Member.Avatar
	}
	return info
}
