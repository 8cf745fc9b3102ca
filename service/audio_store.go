package service

import (
	"sync"

	"github.com/google/uuid"
)

// AudioStore keeps recently synthesized response audio in memory so it can
// be streamed again via GET /audio/{response_id}. Oldest entries are evicted
// once capacity is reached.
type AudioStore struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	order    []string
	capacity int
}

func NewAudioStore(capacity int) *AudioStore {
	if capacity <= 0 {
		capacity = 128
	}
	return &AudioStore{
		entries:  make(map[string][]byte),
		capacity: capacity,
	}
}

// Put stores audio and returns the response id it is retrievable under.
func (s *AudioStore) Put(audio []byte) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	s.entries[id] = audio
	s.order = append(s.order, id)
	return id
}

func (s *AudioStore) Get(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	audio, ok := s.entries[id]
	return audio, ok
}
