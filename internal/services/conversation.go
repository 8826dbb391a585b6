package services

import (
	"strings"
	"sync"
)

// DefaultSessionID is used when a request names no session. All such requests
// share one conversation.
const DefaultSessionID = "default"

// Conversation is the live draft of one session: the latest generated plan and
// the feedback messages applied to it since it was created.
type Conversation struct {
	LatestPlan      *string
	FeedbackHistory []string
}

// Reset clears the draft ahead of a new plan creation.
func (c *Conversation) Reset() {
	c.LatestPlan = nil
	c.FeedbackHistory = nil
}

func (c *Conversation) SetPlan(doc string) {
	c.LatestPlan = &doc
}

// Revise records a successful feedback turn.
func (c *Conversation) Revise(message, doc string) {
	c.FeedbackHistory = append(c.FeedbackHistory, message)
	c.LatestPlan = &doc
}

func (c Conversation) clone() Conversation {
	out := Conversation{FeedbackHistory: append([]string(nil), c.FeedbackHistory...)}
	if c.LatestPlan != nil {
		plan := *c.LatestPlan
		out.LatestPlan = &plan
	}
	return out
}

type session struct {
	mu   sync.Mutex
	conv Conversation
}

// ConversationStore holds one Conversation per session id. Each session has its
// own lock so a creation or feedback turn sees and writes a consistent draft.
type ConversationStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{sessions: make(map[string]*session)}
}

// NormalizeSessionID maps an empty id to DefaultSessionID.
func NormalizeSessionID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultSessionID
	}
	return id
}

func (s *ConversationStore) session(id string) *session {
	id = NormalizeSessionID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	return sess
}

// WithSession runs fn with exclusive access to the session's conversation. fn
// may block on generation; other sessions are not affected.
func (s *ConversationStore) WithSession(id string, fn func(conv *Conversation) error) error {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(&sess.conv)
}

// Snapshot returns a copy of the session's conversation.
func (s *ConversationStore) Snapshot(id string) Conversation {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.conv.clone()
}
