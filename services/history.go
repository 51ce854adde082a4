package services

import (
	"strings"
	"sync"
	"time"

	"skillforge/models"
)

// maxTurnsPerConversation bounds stored history; the oldest turns are
// dropped first.
const maxTurnsPerConversation = 10

// ConversationStore tracks tutor conversation history. Implementations
// must be safe for concurrent use.
type ConversationStore interface {
	Append(conversationID string, turn models.ConversationTurn)
	History(conversationID string) []models.ConversationTurn
}

// MemoryConversationStore keeps conversations in process memory.
type MemoryConversationStore struct {
	mu            sync.Mutex
	conversations map[string][]models.ConversationTurn
}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		conversations: make(map[string][]models.ConversationTurn),
	}
}

func (s *MemoryConversationStore) Append(conversationID string, turn models.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.conversations[conversationID], turn)
	if len(turns) > maxTurnsPerConversation {
		turns = turns[len(turns)-maxTurnsPerConversation:]
	}
	s.conversations[conversationID] = turns
}

// History returns a copy so callers never observe later appends.
func (s *MemoryConversationStore) History(conversationID string) []models.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ConversationTurn(nil), s.conversations[conversationID]...)
}

// compressTurns keeps the most recent turns, clipping questions to 100
// characters and answers to 200 so spliced history never crowds out the
// new question.
func compressTurns(turns []models.ConversationTurn, keep int) []models.ConversationTurn {
	if len(turns) > keep {
		turns = turns[len(turns)-keep:]
	}
	out := make([]models.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		t.Question = clip(t.Question, 100)
		t.Answer = clip(t.Answer, 200)
		out = append(out, t)
	}
	return out
}

func clip(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max]) + "..."
}

func nowUTC() time.Time { return time.Now().UTC() }
