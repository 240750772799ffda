package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// TextUploader stores a text object under a key
type TextUploader interface {
	UploadText(ctx context.Context, objectName string, content string) error
}

// TranscriptArchive writes a readable copy of each saved interview to object storage
type TranscriptArchive struct {
	uploader TextUploader
}

// NewTranscriptArchive creates a transcript archive
func NewTranscriptArchive(uploader TextUploader) *TranscriptArchive {
	return &TranscriptArchive{uploader: uploader}
}

// ArchiveInterview uploads the interview and returns the object key
func (a *TranscriptArchive) ArchiveInterview(ctx context.Context, interview *entities.Interview) (string, error) {
	key := ArchiveKey(interview)
	if err := a.uploader.UploadText(ctx, key, RenderArchive(interview)); err != nil {
		return "", err
	}
	return key, nil
}

// ArchiveKey returns interviews/<user>/<id>.txt
func ArchiveKey(interview *entities.Interview) string {
	return fmt.Sprintf("%s%d.txt", UserPrefix(interview.UserID), interview.ID)
}

// RenderArchive formats the interview as plain text
func RenderArchive(interview *entities.Interview) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Interview #%d\n", interview.ID)
	fmt.Fprintf(&sb, "Date: %s\n", interview.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "Company: %s\n", interview.CompanyName)
	fmt.Fprintf(&sb, "Job Title: %s\n", interview.JobTitle)
	fmt.Fprintf(&sb, "Interview Type: %s\n", interview.InterviewType)
	fmt.Fprintf(&sb, "Conversation: %s\n", interview.ConversationID)
	fmt.Fprintf(&sb, "Score: %s\n", scoreLabel(interview.Score))
	sb.WriteString("\nJob Description:\n")
	sb.WriteString(interview.JobDescription)
	sb.WriteString("\n\nTranscript:\n")
	sb.WriteString(interview.ChatHistory)
	sb.WriteString("\n\nFeedback:\n")
	sb.WriteString(interview.Feedback)
	sb.WriteString("\n")
	return sb.String()
}

func scoreLabel(s entities.Score) string {
	if !s.Available() {
		return "unavailable"
	}
	return fmt.Sprintf("%d/100", int(s))
}

// FileLister lists object keys under a prefix
type FileLister interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// ArchiveIndex lists the archived transcripts of one user
type ArchiveIndex struct {
	lister FileLister
}

// NewArchiveIndex creates an archive index
func NewArchiveIndex(lister FileLister) *ArchiveIndex {
	return &ArchiveIndex{lister: lister}
}

// ListArchives returns the object keys archived for userID
func (x *ArchiveIndex) ListArchives(ctx context.Context, userID uuid.UUID) ([]string, error) {
	keys, err := x.lister.ListFiles(ctx, UserPrefix(userID))
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

// UserPrefix returns interviews/<user>/
func UserPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("interviews/%s/", userID.String())
}
