package entities

import "errors"

// Domain errors
var (
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrEmptyUserID         = errors.New("user id is required")
)
