package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

var errNotReady = errors.New("conversation not finished")

// PollOptions controls how long the fetcher waits for a conversation to finish
type PollOptions struct {
	Interval time.Duration
	// MaxPolls caps the number of re-polls after the first request; 0 means no cap
	MaxPolls uint64
	// Timeout bounds the whole poll loop; 0 means only the caller's context applies
	Timeout time.Duration
}

// TranscriptFetcher waits for a conversation to reach a terminal state and returns its transcript
type TranscriptFetcher struct {
	provider ConversationProvider
	opts     PollOptions
	logger   *zap.Logger
}

// NewTranscriptFetcher creates a transcript fetcher
func NewTranscriptFetcher(provider ConversationProvider, opts PollOptions, logger *zap.Logger) *TranscriptFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	return &TranscriptFetcher{provider: provider, opts: opts, logger: logger}
}

// FetchTranscript polls the provider until the conversation is done or failed.
// Every failure is reported as ErrTranscriptUnavailable.
func (f *TranscriptFetcher) FetchTranscript(ctx context.Context, conversationID string) (entities.Transcript, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTranscriptUnavailable, entities.ErrEmptyConversationID)
	}

	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	var (
		job   *entities.ConversationJob
		polls int
	)
	poll := func() error {
		polls++
		res, err := f.provider.GetConversation(ctx, conversationID)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch res.Status {
		case entities.ConversationDone:
			job = res
			return nil
		case entities.ConversationFailed:
			return backoff.Permanent(fmt.Errorf("conversation %s failed", conversationID))
		}
		return errNotReady
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(f.opts.Interval)
	if f.opts.MaxPolls > 0 {
		b = backoff.WithMaxRetries(b, f.opts.MaxPolls)
	}

	notify := func(err error, wait time.Duration) {
		f.logger.Debug("conversation not finished, polling again",
			zap.String("conversation_id", conversationID),
			zap.Int("poll", polls),
			zap.Duration("wait", wait),
		)
	}

	if err := backoff.RetryNotify(poll, backoff.WithContext(b, ctx), notify); err != nil {
		if errors.Is(err, errNotReady) {
			err = fmt.Errorf("conversation %s still not finished after %d polls", conversationID, polls)
		}
		f.logger.Error("failed to fetch transcript",
			zap.String("stage", "fetch_transcript"),
			zap.String("conversation_id", conversationID),
			zap.Int("polls", polls),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTranscriptUnavailable, err)
	}

	transcript := make(entities.Transcript, len(job.Turns))
	copy(transcript, job.Turns)

	f.logger.Info("transcript fetched",
		zap.String("conversation_id", conversationID),
		zap.Int("polls", polls),
		zap.Int("turns", len(transcript)),
	)
	return transcript, nil
}
