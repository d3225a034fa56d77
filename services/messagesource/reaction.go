package messagesource

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"messagecloner/clients"
	"messagecloner/core"
)

// ReactionInfo carries the source message's reactions
type ReactionInfo struct {
	Reactions []*discordgo.MessageReactions
}

// CheckReaction returns core.ErrSourceReaction if the message has reactions,
// which are only recreated by HandleReaction
func (s *MessageSource) CheckReaction() error {
	if len(s.ReactionInfo.Reactions) > 0 {
		return core.ErrSourceReaction
	}
	return nil
}

// HandleReaction adds the source message's reactions to the created message.
// Each emoji is added once, by the bot, so reaction counts aren't kept.
// Custom emojis from guilds the bot isn't in make this fail.
func (s *MessageSource) HandleReaction(ctx context.Context, client clients.DiscordClient) error {
	if len(s.ReactionInfo.Reactions) == 0 {
		return nil
	}

	response, ok := s.Response.Get()
	if !ok {
		return core.ErrSourceNotCreated
	}

	log.Printf("📋 Starting to add %d reactions to message %s", len(s.ReactionInfo.Reactions), response.ID)
	for _, reaction := range s.ReactionInfo.Reactions {
		if reaction == nil || reaction.Emoji == nil {
			continue
		}
		if err := client.AddReaction(ctx, response.ChannelID, response.ID, reaction.Emoji.APIName()); err != nil {
			return fmt.Errorf("failed to add reaction: %w", err)
		}
	}

	log.Printf("📋 Completed successfully - added reactions to message %s", response.ID)
	return nil
}
