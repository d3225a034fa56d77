package messagesource

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
)

// AvatarInfo holds what's needed to build the author's avatar URL
type AvatarInfo struct {
	// URL overrides the computed URL, it's also where the computed URL is cached
	URL               mo.Option[string]
	UserID            string
	GuildID           string
	UserDiscriminator string
	UserAvatar        string
	MemberAvatar      string
}

// AvatarURL returns the URL of the avatar shown for the author in the guild.
// The guild avatar is preferred over the user's avatar, falling back to the
// default avatar.
func (a *AvatarInfo) AvatarURL() string {
	if url, ok := a.URL.Get(); ok {
		return url
	}

	url := a.buildURL()
	a.URL = mo.Some(url)
	return url
}

func (a *AvatarInfo) buildURL() string {
	switch {
	case a.MemberAvatar != "":
		if isAnimatedHash(a.MemberAvatar) {
			return discordgo.EndpointGuildMemberAvatarAnimated(a.GuildID, a.UserID, a.MemberAvatar)
		}
		return discordgo.EndpointGuildMemberAvatar(a.GuildID, a.UserID, a.MemberAvatar)
	case a.UserAvatar != "":
		if isAnimatedHash(a.UserAvatar) {
			return discordgo.EndpointUserAvatarAnimated(a.UserID, a.UserAvatar)
		}
		return discordgo.EndpointUserAvatar(a.UserID, a.UserAvatar)
	default:
		user := discordgo.User{ID: a.UserID, Discriminator: a.UserDiscriminator}
		return discordgo.EndpointDefaultUserAvatar(user.DefaultAvatarIndex())
	}
}

func isAnimatedHash(hash string) bool {
	return strings.HasPrefix(hash, "a_")
}
