// pkg/memcache/resolved_images.go
package mem

import "sync"

// ResolvedImageStore memoizes image resolution per destination id. Safe
// because resolution is stable for a fixed asset set; no TTL needed.
type ResolvedImageStore interface {
	Set(destinationID string, names []string)
	Get(destinationID string) ([]string, bool)
}

type ResolvedImages struct {
	mu   sync.RWMutex
	data map[string][]string
}

func NewResolvedImages() *ResolvedImages {
	return &ResolvedImages{
		data: make(map[string][]string),
	}
}

func (s *ResolvedImages) Set(destinationID string, names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[destinationID] = names
}

func (s *ResolvedImages) Get(destinationID string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names, ok := s.data[destinationID]
	return names, ok
}
