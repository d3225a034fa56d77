package clients

import (
	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
)

// ExecuteWebhookParams holds the fields sent when executing a webhook
type ExecuteWebhookParams struct {
	Content    string
	Username   string
	AvatarURL  string
	Embeds     []*discordgo.MessageEmbed
	TTS        bool
	Flags      discordgo.MessageFlags
	Components []discordgo.MessageComponent
	// ThreadID routes the message into a thread of the webhook's channel
	ThreadID mo.Option[string]
}

// StartThreadParams holds parameters for starting a thread from a message
type StartThreadParams struct {
	ChannelID           string
	MessageID           string
	Name                string
	AutoArchiveDuration int
}
