package session

import (
	"hash/fnv"
	"sync"

	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/quiz"
)

// UserSession is the per-user state carried across turns.
type UserSession struct {
	// LastQuestion is the most recent study query, kept for the legacy
	// follow-up validation path.
	LastQuestion string

	// ActiveQuiz is non-nil exactly while the user is in quiz mode.
	ActiveQuiz *quiz.Record

	// Language is the most recently classified language for this user.
	Language lang.Tag
}

// Store owns all user sessions. The engine is its only writer.
// Operations on a single user are linearizable; distinct users never
// block one another. Implementations may evict idle entries: a missing
// session is indistinguishable from a fresh one by contract.
type Store interface {
	// Get returns a snapshot of the user's session, creating an empty
	// one on first contact. The second result is false when the session
	// was created by this call.
	Get(userID string) (UserSession, bool)

	// SetPendingQuiz installs a quiz for the user, replacing any prior
	// one. Last write wins; there are no merge semantics.
	SetPendingQuiz(userID string, rec quiz.Record)

	// TakePendingQuiz atomically removes and returns the user's active
	// quiz. At most one concurrent caller observes it.
	TakePendingQuiz(userID string) (*quiz.Record, bool)

	// ClearPendingQuiz removes the active quiz, returning the user to
	// normal-question mode.
	ClearPendingQuiz(userID string)

	// RecordLastQuestion stores the most recent question text for the
	// legacy validation path.
	RecordLastQuestion(userID, text string)

	// SetLanguage records the user's current language preference.
	SetLanguage(userID string, tag lang.Tag)
}

const shardCount = 16

// MemoryStore is the in-process Store: a sharded map with one mutex per
// shard, so contention stays per-user-neighborhood rather than global.
type MemoryStore struct {
	shards [shardCount]*shard
}

type shard struct {
	mu       sync.Mutex
	sessions map[string]*UserSession
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.shards {
		s.shards[i] = &shard{sessions: make(map[string]*UserSession)}
	}
	return s
}

func (s *MemoryStore) shardFor(userID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return s.shards[h.Sum32()%shardCount]
}

// session returns the live session for userID, creating it if needed.
// Caller must hold the shard lock.
func (sh *shard) session(userID string) (*UserSession, bool) {
	sess, ok := sh.sessions[userID]
	if !ok {
		sess = &UserSession{}
		sh.sessions[userID] = sess
	}
	return sess, ok
}

func (s *MemoryStore) Get(userID string) (UserSession, bool) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, existed := sh.session(userID)
	return *sess, existed
}

func (s *MemoryStore) SetPendingQuiz(userID string, rec quiz.Record) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, _ := sh.session(userID)
	sess.ActiveQuiz = &rec
}

func (s *MemoryStore) TakePendingQuiz(userID string) (*quiz.Record, bool) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, _ := sh.session(userID)
	if sess.ActiveQuiz == nil {
		return nil, false
	}
	rec := sess.ActiveQuiz
	sess.ActiveQuiz = nil
	return rec, true
}

func (s *MemoryStore) ClearPendingQuiz(userID string) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, _ := sh.session(userID)
	sess.ActiveQuiz = nil
}

func (s *MemoryStore) RecordLastQuestion(userID, text string) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, _ := sh.session(userID)
	sess.LastQuestion = text
}

func (s *MemoryStore) SetLanguage(userID string, tag lang.Tag) {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, _ := sh.session(userID)
	sess.Language = tag
}
