package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

type memUploader struct {
	objects map[string]string
	err     error
}

func (m *memUploader) UploadText(ctx context.Context, name, content string) error {
	if m.err != nil {
		return m.err
	}
	if m.objects == nil {
		m.objects = map[string]string{}
	}
	m.objects[name] = content
	return nil
}

func sampleInterview() *entities.Interview {
	rec := entities.NewInterview(uuid.MustParse("11111111-2222-3333-4444-555555555555"), entities.InterviewContext{
		ConversationID: "conv-9",
		CompanyName:    "Acme",
		JobTitle:       "SRE",
		InterviewType:  "technical",
		JobDescription: "Keep things up",
	}, entities.Transcript{{Role: entities.RoleInterviewer, Message: "Hi"}}, "Strengths:\n- calm", 77)
	rec.ID = 5
	rec.CreatedAt = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	return rec
}

func TestArchiveInterview(t *testing.T) {
	up := &memUploader{}
	key, err := NewTranscriptArchive(up).ArchiveInterview(context.Background(), sampleInterview())
	if err != nil {
		t.Fatalf("ArchiveInterview failed: %v", err)
	}
	if key != "interviews/11111111-2222-3333-4444-555555555555/5.txt" {
		t.Fatalf("unexpected key %s", key)
	}
	body := up.objects[key]
	for _, want := range []string{"Company: Acme", "Score: 77/100", "Interviewer: Hi", "Strengths:\n- calm", "2025-02-03T04:05:06Z"} {
		if !strings.Contains(body, want) {
			t.Errorf("archive missing %q:\n%s", want, body)
		}
	}
}

func TestArchiveInterview_UnavailableScore(t *testing.T) {
	rec := sampleInterview()
	rec.Score = entities.ScoreUnavailable
	if !strings.Contains(RenderArchive(rec), "Score: unavailable") {
		t.Fatal("expected unavailable score label")
	}
}

func TestArchiveInterview_UploadError(t *testing.T) {
	_, err := NewTranscriptArchive(&memUploader{err: errors.New("denied")}).ArchiveInterview(context.Background(), sampleInterview())
	if err == nil {
		t.Fatal("expected upload error")
	}
}

type memLister struct {
	keys   []string
	prefix string
}

func (m *memLister) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	m.prefix = prefix
	var out []string
	for _, k := range m.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

func TestArchiveIndex_ScopedToUser(t *testing.T) {
	owner := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	other := uuid.New()
	lister := &memLister{keys: []string{
		"interviews/" + owner.String() + "/1.txt",
		"interviews/" + other.String() + "/2.txt",
		"interviews/" + owner.String() + "/3.txt",
	}}

	keys, err := NewArchiveIndex(lister).ListArchives(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListArchives: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
	if lister.prefix != UserPrefix(owner) {
		t.Fatalf("unexpected prefix %q", lister.prefix)
	}

	empty, err := NewArchiveIndex(&memLister{}).ListArchives(context.Background(), owner)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v %v", empty, err)
	}
}
