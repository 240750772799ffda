package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// Service defines interview feedback operations
type Service interface {
	SubmitInterview(ctx context.Context, userID uuid.UUID, ictx entities.InterviewContext) (*entities.PublicInterview, error)
	ListInterviews(ctx context.Context, userID uuid.UUID) ([]entities.PublicInterview, error)
}

// Config holds the pipeline settings
type Config struct {
	Poll    PollOptions
	Model   string
	Timeout time.Duration
}

type interviewService struct {
	fetcher   *TranscriptFetcher
	feedback  *FeedbackGenerator
	scorer    *ScoreExtractor
	persister *RecordPersister
	repo      repositories.InterviewRepository
	archiver  Archiver
	timeout   time.Duration
	logger    *zap.Logger
}

// NewInterviewService wires the pipeline stages. archiver may be nil.
func NewInterviewService(
	conversations ConversationProvider,
	completion CompletionProvider,
	repo repositories.InterviewRepository,
	archiver Archiver,
	cfg Config,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &interviewService{
		fetcher:   NewTranscriptFetcher(conversations, cfg.Poll, logger),
		feedback:  NewFeedbackGenerator(completion, cfg.Model, logger),
		scorer:    NewScoreExtractor(completion, cfg.Model, logger),
		persister: NewRecordPersister(repo, logger),
		repo:      repo,
		archiver:  archiver,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
}

// SubmitInterview runs fetch, feedback, score and persist in order.
// Only transcript and persistence failures abort the request.
func (s *interviewService) SubmitInterview(ctx context.Context, userID uuid.UUID, ictx entities.InterviewContext) (*entities.PublicInterview, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := s.logger.With(zap.String("user_id", userID.String()), zap.String("conversation_id", ictx.ConversationID))
	if err := ictx.Validate(); err != nil {
		log.Info("interview rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}
	log.Info("interview submitted", zap.String("stage", "fetch_transcript"))

	transcript, err := s.fetcher.FetchTranscript(ctx, ictx.ConversationID)
	if err != nil {
		return nil, err
	}

	log.Info("generating feedback", zap.String("stage", "generate_feedback"), zap.Int("turns", len(transcript)))
	fb := s.feedback.GenerateFeedback(ctx, ictx, transcript)

	var score entities.ScoreResult
	if fb.Degraded {
		score = entities.DegradedScore("feedback unavailable")
	} else {
		log.Info("extracting score", zap.String("stage", "extract_score"))
		score = s.scorer.ExtractScore(ctx, fb.Text)
	}

	log.Info("saving interview",
		zap.String("stage", "persist"),
		zap.Bool("feedback_degraded", fb.Degraded),
		zap.Int("score", int(score.Score)),
	)
	record, err := s.persister.SaveRecord(ctx, userID, ictx, transcript, fb.Text, score.Score)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, record)

	pub := record.ToPublic()
	return &pub, nil
}

func (s *interviewService) archive(ctx context.Context, record *entities.Interview) {
	if s.archiver == nil {
		return
	}
	key, err := s.archiver.ArchiveInterview(ctx, record)
	if err != nil {
		s.logger.Warn("failed to archive interview",
			zap.String("stage", "archive"),
			zap.Int64("interview_id", record.ID),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("interview archived", zap.String("stage", "archive"), zap.String("object", key))
}

// ListInterviews returns the caller's interviews without owner ids
func (s *interviewService) ListInterviews(ctx context.Context, userID uuid.UUID) ([]entities.PublicInterview, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list interviews", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrListInterviews, err)
	}

	out := make([]entities.PublicInterview, 0, len(records))
	for _, r := range records {
		if r.UserID != uuid.Nil && r.UserID != userID {
			continue
		}
		out = append(out, r.ToPublic())
	}
	return out, nil
}
