package core

import "errors"

// Errors returned while building a message source from a message
var (
	ErrRichPresence   = errors.New("message is related to rich presence")
	ErrVoice          = errors.New("message is a voice message")
	ErrSystem         = errors.New("message is a system message")
	ErrContentInvalid = errors.New("message content is invalid")
	ErrNotInGuild     = errors.New("message is not in a guild")
)

// Errors returned by the opt-in checks on a message source
var (
	ErrSourceComponent  = errors.New("source message has components that can't be replicated")
	ErrSourceReference  = errors.New("source message is a reply")
	ErrSourceReaction   = errors.New("source message has reactions")
	ErrSourceAttachment = errors.New("source message has attachments")
	ErrSourceSticker    = errors.New("source message has stickers")
	ErrSourceThread     = errors.New("source message is the first message of a forum post")
)

// Errors returned when a message source is used out of order
var (
	ErrSourceNotCreated        = errors.New("source message hasn't been created yet")
	ErrSourceAlreadyCreated    = errors.New("source message has already been created")
	ErrLaterMessagesIncomplete = errors.New("later messages haven't all been fetched")
	ErrThreadResolved          = errors.New("thread info is already resolved")
)

// ErrHTTP wraps failures of requests to the Discord API
var ErrHTTP = errors.New("discord request failed")

// ErrValidation is returned when an outgoing request would be rejected by Discord
var ErrValidation = errors.New("request validation failed")
