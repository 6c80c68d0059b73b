package web

import (
	"sync"

	"github.com/senior-cherry/quiz-builder/internal/editor"
)

// DraftStore keeps one in-progress draft per browser session. Reads hand out
// copies; the only way to change a stored draft is to Put a whole new value.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]editor.Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]editor.Draft)}
}

func (s *DraftStore) Get(sessionID string) (editor.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	return d, ok
}

func (s *DraftStore) Put(sessionID string, d editor.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = d
}

func (s *DraftStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
