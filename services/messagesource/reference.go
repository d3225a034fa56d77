package messagesource

import (
	"github.com/bwmarrin/discordgo"

	"messagecloner/core"
)

// ReferenceInfo describes what the message is replying to.
// It is one of ReferenceNone, ReferenceUnknownOrDeleted or Reference.
//
// Webhooks can't reply, so Create drops the reply whatever the variant is.
type ReferenceInfo interface {
	isReferenceInfo()
}

// ReferenceNone means the message isn't a reply
type ReferenceNone struct{}

// ReferenceUnknownOrDeleted means the message is a reply but the replied
// message wasn't included, usually because it was deleted
type ReferenceUnknownOrDeleted struct{}

// Reference means the message is a reply to Message
type Reference struct {
	Message *discordgo.Message
}

func (ReferenceNone) isReferenceInfo()             {}
func (ReferenceUnknownOrDeleted) isReferenceInfo() {}
func (Reference) isReferenceInfo()                 {}

func resolveReference(message *discordgo.Message) ReferenceInfo {
	if message.Type != discordgo.MessageTypeReply {
		return ReferenceNone{}
	}
	if message.ReferencedMessage == nil {
		return ReferenceUnknownOrDeleted{}
	}
	return Reference{Message: message.ReferencedMessage}
}

// CheckReference returns core.ErrSourceReference if the message is a reply,
// since the reply is lost when it's created
func (s *MessageSource) CheckReference() error {
	switch s.ReferenceInfo.(type) {
	case ReferenceUnknownOrDeleted, Reference:
		return core.ErrSourceReference
	case ReferenceNone, nil:
	}
	return nil
}
