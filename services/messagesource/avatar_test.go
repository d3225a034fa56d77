package messagesource

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestAvatarURL(t *testing.T) {
	testCases := []struct {
		name     string
		info     AvatarInfo
		expected string
	}{
		{
			name: "guild avatar is preferred",
			info: AvatarInfo{
				UserID:       testUserID,
				GuildID:      testGuildID,
				UserAvatar:   "userhash",
				MemberAvatar: "memberhash",
			},
			expected: discordgo.EndpointCDNGuilds + testGuildID + "/users/" + testUserID + "/avatars/memberhash.png",
		},
		{
			name: "animated guild avatar",
			info: AvatarInfo{
				UserID:       testUserID,
				GuildID:      testGuildID,
				MemberAvatar: "a_memberhash",
			},
			expected: discordgo.EndpointCDNGuilds + testGuildID + "/users/" + testUserID + "/avatars/a_memberhash.gif",
		},
		{
			name: "user avatar without guild avatar",
			info: AvatarInfo{
				UserID:     testUserID,
				GuildID:    testGuildID,
				UserAvatar: "userhash",
			},
			expected: discordgo.EndpointCDNAvatars + testUserID + "/userhash.png",
		},
		{
			name: "animated user avatar",
			info: AvatarInfo{
				UserID:     testUserID,
				GuildID:    testGuildID,
				UserAvatar: "a_userhash",
			},
			expected: discordgo.EndpointCDNAvatars + testUserID + "/a_userhash.gif",
		},
		{
			name: "default avatar for migrated usernames",
			info: AvatarInfo{
				UserID:            testUserID,
				GuildID:           testGuildID,
				UserDiscriminator: "0",
			},
			expected: discordgo.EndpointCDN + "embed/avatars/1.png",
		},
		{
			name: "default avatar for legacy discriminators",
			info: AvatarInfo{
				UserID:            testUserID,
				GuildID:           testGuildID,
				UserDiscriminator: "1234",
			},
			expected: discordgo.EndpointCDN + "embed/avatars/4.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info

			assert.Equal(t, tc.expected, info.AvatarURL())
			assert.Equal(t, mo.Some(tc.expected), info.URL, "computed URL should be cached")
		})
	}
}

func TestAvatarURL_Override(t *testing.T) {
	info := AvatarInfo{
		URL:        mo.Some("https://example.com/avatar.png"),
		UserID:     testUserID,
		UserAvatar: "userhash",
	}

	assert.Equal(t, "https://example.com/avatar.png", info.AvatarURL())
}

func TestFromMessage_AvatarFromMember(t *testing.T) {
	message := newTestMessage()
	message.Author.Avatar = "userhash"
	message.Member = &discordgo.Member{Avatar: "memberhash"}

	source := newTestSource(t, message)

	assert.Equal(t, "userhash", source.AvatarInfo.UserAvatar)
	assert.Equal(t, "memberhash", source.AvatarInfo.MemberAvatar)
	assert.Contains(t, source.AvatarInfo.AvatarURL(), "/guilds/"+testGuildID+"/users/"+testUserID+"/avatars/memberhash")
}
