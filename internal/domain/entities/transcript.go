package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TranscriptRole identifies who spoke a transcript turn
type TranscriptRole string

const (
	RoleInterviewer TranscriptRole = "interviewer"
	RoleCandidate   TranscriptRole = "candidate"
)

// NormalizeRole maps a provider role onto a TranscriptRole.
// Unknown roles pass through lower-cased.
func NormalizeRole(providerRole string) TranscriptRole {
	role := strings.ToLower(strings.TrimSpace(providerRole))
	switch role {
	case "agent", "assistant", string(RoleInterviewer):
		return RoleInterviewer
	case "user", string(RoleCandidate):
		return RoleCandidate
	}
	return TranscriptRole(role)
}

// Label returns the role with its first letter upper-cased, as used in chat history lines
func (r TranscriptRole) Label() string {
	s := string(r)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// TranscriptTurn is one utterance in an interview
type TranscriptTurn struct {
	Role    TranscriptRole `json:"role"`
	Message string         `json:"message"`
}

// Transcript is the chronological list of turns of one interview
type Transcript []TranscriptTurn

// Flatten renders one "<Role>: <message>" line per turn, in order
func (t Transcript) Flatten() string {
	lines := make([]string, 0, len(t))
	for _, turn := range t {
		lines = append(lines, turn.Role.Label()+": "+turn.Message)
	}
	return strings.Join(lines, "\n")
}
