package messagesource

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"messagecloner/core"
)

// AttachmentStickerInfo carries the source message's attachments and stickers
type AttachmentStickerInfo struct {
	Attachments []*discordgo.MessageAttachment
	Stickers    []*discordgo.StickerItem
}

// CheckAttachment returns core.ErrSourceAttachment if the message has
// attachments, which are only kept as links by HandleAttachmentLink
func (s *MessageSource) CheckAttachment() error {
	if len(s.AttachmentStickerInfo.Attachments) > 0 {
		return core.ErrSourceAttachment
	}
	return nil
}

// CheckSticker returns core.ErrSourceSticker if the message has stickers,
// webhooks can't send stickers
func (s *MessageSource) CheckSticker() error {
	if len(s.AttachmentStickerInfo.Stickers) > 0 {
		return core.ErrSourceSticker
	}
	return nil
}

// HandleAttachmentLink appends the attachments' URLs to the content.
//
// Returns core.ErrContentInvalid if the content gets too long, in which case
// the content is left unchanged.
func (s *MessageSource) HandleAttachmentLink() error {
	if len(s.AttachmentStickerInfo.Attachments) == 0 {
		return nil
	}

	lines := make([]string, 0, len(s.AttachmentStickerInfo.Attachments)+1)
	if s.Content != "" {
		lines = append(lines, s.Content)
	}
	for _, attachment := range s.AttachmentStickerInfo.Attachments {
		lines = append(lines, attachment.URL)
	}

	content := strings.Join(lines, "\n")
	if err := validateContent(content); err != nil {
		return err
	}

	s.Content = content
	return nil
}
