package main

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	discordclient "messagecloner/clients/discord"
	"messagecloner/core"
	"messagecloner/usecases/clone"
)

type mockCloner struct {
	mock.Mock
}

func (m *mockCloner) CloneMessage(ctx context.Context, request clone.CloneRequest) (*clone.CloneResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clone.CloneResult), args.Error(1)
}

func cloneRequest(messageID string) clone.CloneRequest {
	return clone.CloneRequest{SourceChannelID: "source", MessageID: messageID, DestinationChannelID: "destination"}
}

func cloneResult(messageID string) *clone.CloneResult {
	return &clone.CloneResult{CloneID: "cln_test", Message: &discordgo.Message{ID: messageID}}
}

func TestCloneMessages_InOrder(t *testing.T) {
	cloner := new(mockCloner)
	var order []string
	for _, id := range []string{"1", "2", "3"} {
		cloner.On("CloneMessage", mock.Anything, cloneRequest(id)).
			Run(func(args mock.Arguments) {
				order = append(order, args.Get(1).(clone.CloneRequest).MessageID)
			}).
			Return(cloneResult("clone-"+id), nil).Once()
	}

	err := cloneMessages(context.Background(), cloner, []clone.CloneRequest{
		cloneRequest("1"), cloneRequest("2"), cloneRequest("3"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, order)
	cloner.AssertExpectations(t)
}

func TestCloneMessages_StopsAtFirstFailure(t *testing.T) {
	cloner := new(mockCloner)
	cloneErr := errors.New("missing permissions")
	cloner.On("CloneMessage", mock.Anything, cloneRequest("1")).Return(cloneResult("clone-1"), nil).Once()
	cloner.On("CloneMessage", mock.Anything, cloneRequest("2")).Return(nil, cloneErr).Once()

	err := cloneMessages(context.Background(), cloner, []clone.CloneRequest{
		cloneRequest("1"), cloneRequest("2"), cloneRequest("3"),
	})

	assert.ErrorIs(t, err, cloneErr)
	assert.Contains(t, err.Error(), "message 2")
	cloner.AssertNotCalled(t, "CloneMessage", mock.Anything, cloneRequest("3"))
	cloner.AssertExpectations(t)
}

func TestCloneMessages_Cancelled(t *testing.T) {
	cloner := new(mockCloner)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cloneMessages(ctx, cloner, []clone.CloneRequest{cloneRequest("1")})

	assert.ErrorIs(t, err, context.Canceled)
	cloner.AssertNotCalled(t, "CloneMessage", mock.Anything, mock.Anything)
}

func TestWebhookChannelID(t *testing.T) {
	testCases := []struct {
		name     string
		channel  *discordgo.Channel
		expected string
	}{
		{
			name:     "text channel",
			channel:  &discordgo.Channel{ID: "parent", Type: discordgo.ChannelTypeGuildText},
			expected: "parent",
		},
		{
			name:     "public thread",
			channel:  &discordgo.Channel{ID: "thread-a", ParentID: "parent", Type: discordgo.ChannelTypeGuildPublicThread},
			expected: "parent",
		},
		{
			name:     "private thread",
			channel:  &discordgo.Channel{ID: "thread-b", ParentID: "parent", Type: discordgo.ChannelTypeGuildPrivateThread},
			expected: "parent",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := new(discordclient.MockDiscordClient)
			client.On("Channel", mock.Anything, tc.channel.ID).Return(tc.channel, nil).Once()

			channelID, err := webhookChannelID(context.Background(), client, tc.channel.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, channelID)
			client.AssertExpectations(t)
		})
	}
}

func TestWebhookChannelID_Error(t *testing.T) {
	client := new(discordclient.MockDiscordClient)
	client.On("Channel", mock.Anything, "missing").Return(nil, core.ErrHTTP).Once()

	_, err := webhookChannelID(context.Background(), client, "missing")

	assert.ErrorIs(t, err, core.ErrHTTP)
	client.AssertExpectations(t)
}
