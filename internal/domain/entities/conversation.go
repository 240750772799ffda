package entities

// ConversationStatus is the lifecycle state of a provider conversation
type ConversationStatus string

const (
	ConversationInitiated  ConversationStatus = "initiated"
	ConversationInProgress ConversationStatus = "in-progress"
	ConversationProcessing ConversationStatus = "processing"
	ConversationDone       ConversationStatus = "done"
	ConversationFailed     ConversationStatus = "failed"
)

// IsTerminal reports whether no further status change is expected
func (s ConversationStatus) IsTerminal() bool {
	return s == ConversationDone || s == ConversationFailed
}

// ConversationJob is a provider conversation translated at the adapter boundary
type ConversationJob struct {
	ID     string
	Status ConversationStatus
	Turns  Transcript
}
