package messagesource

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	discordclient "messagecloner/clients/discord"
)

// Test constants for consistent test data
const (
	testMessageID = "1100000000000000001"
	testChannelID = "1100000000000000002"
	testGuildID   = "1100000000000000003"
	testUserID    = "1100000000000000004"
	testThreadID  = "1100000000000000005"
	testParentID  = "1100000000000000006"
	testWebhookID = "1100000000000000007"
	testSentID    = "1100000000000000008"
)

type messageSourceTestFixture struct {
	client *discordclient.MockDiscordClient
	ctx    context.Context
}

func setupMessageSourceTest(t *testing.T) *messageSourceTestFixture {
	fixture := &messageSourceTestFixture{
		client: new(discordclient.MockDiscordClient),
		ctx:    context.Background(),
	}
	t.Cleanup(func() { fixture.client.AssertExpectations(t) })
	return fixture
}

// newTestMessage returns a plain guild message that can be cloned
func newTestMessage() *discordgo.Message {
	return &discordgo.Message{
		ID:        testMessageID,
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		Content:   "hello world",
		Type:      discordgo.MessageTypeDefault,
		Author: &discordgo.User{
			ID:            testUserID,
			Username:      "alice",
			GlobalName:    "Alice",
			Discriminator: "0",
		},
	}
}

func newTestSource(t *testing.T, message *discordgo.Message) *MessageSource {
	source, err := FromMessage(message)
	require.NoError(t, err)
	return source
}

func linkButton(url string) discordgo.Button {
	return discordgo.Button{Label: "link", Style: discordgo.LinkButton, URL: url}
}

func customButton(customID string) discordgo.Button {
	return discordgo.Button{Label: "click", Style: discordgo.PrimaryButton, CustomID: customID}
}

func testWebhook() *discordgo.Webhook {
	return &discordgo.Webhook{ID: testWebhookID, ChannelID: testChannelID, Token: "webhook-token"}
}

func sentMessage(channelID string) *discordgo.Message {
	return &discordgo.Message{ID: testSentID, ChannelID: channelID}
}
