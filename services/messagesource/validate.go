package messagesource

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"messagecloner/core"
)

const (
	maxContentLength  = 2000
	maxWebhookNameLen = 80
	maxUsernameLength = 80
)

// Substrings Discord rejects in webhook names and usernames
var forbiddenNameSubstrings = []string{"clyde", "discord"}

func validateContent(content string) error {
	if length := utf8.RuneCountInString(content); length > maxContentLength {
		return fmt.Errorf("%w: content is %d characters long, the limit is %d",
			core.ErrContentInvalid, length, maxContentLength)
	}
	return nil
}

func validateName(kind, name string, maxLength int) error {
	length := utf8.RuneCountInString(name)
	if length == 0 || length > maxLength {
		return fmt.Errorf("%w: %s must be between 1 and %d characters, got %d",
			core.ErrValidation, kind, maxLength, length)
	}

	lower := strings.ToLower(name)
	for _, forbidden := range forbiddenNameSubstrings {
		if strings.Contains(lower, forbidden) {
			return fmt.Errorf("%w: %s can't contain %q", core.ErrValidation, kind, forbidden)
		}
	}
	return nil
}

func validateWebhookName(name string) error {
	return validateName("webhook name", name, maxWebhookNameLen)
}

func validateUsername(username string) error {
	return validateName("username", username, maxUsernameLength)
}
