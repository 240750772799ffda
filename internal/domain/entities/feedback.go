package entities

// FeedbackErrorPrefix starts the feedback text stored when generation failed
const FeedbackErrorPrefix = "Error generating feedback: "

// FeedbackResult is the outcome of the feedback stage.
// Text is always set; when Degraded it carries the error text shown to the user.
type FeedbackResult struct {
	Text     string
	Degraded bool
	Reason   string
}

// DegradedFeedback builds the result stored when the completion call failed
func DegradedFeedback(cause error) FeedbackResult {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return FeedbackResult{
		Text:     FeedbackErrorPrefix + reason,
		Degraded: true,
		Reason:   reason,
	}
}

// ScoreResult is the outcome of the scoring stage
type ScoreResult struct {
	Score    Score
	Degraded bool
	Reason   string
}

// DegradedScore builds the sentinel result for an uncomputable score
func DegradedScore(reason string) ScoreResult {
	return ScoreResult{Score: ScoreUnavailable, Degraded: true, Reason: reason}
}

// ChatRole is the role of a completion message
type ChatRole string

const (
	ChatRoleSystem ChatRole = "system"
	ChatRoleUser   ChatRole = "user"
)

// ChatMessage is one message sent to the completion provider
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// CompletionRequest is a provider-neutral chat completion call
type CompletionRequest struct {
	Model    string
	Messages []ChatMessage
}
