package echoai

import "sync"

// ──────────────────────────────────────────────
// Memory Store — pluggable persistence contract
// ──────────────────────────────────────────────

// MemoryStore is the storage backend contract for session persistence.
// Data is organized by namespace (typically one per assistant session,
// e.g. "echoai:default") and key. The engine stores its SessionState as a
// single KV entry and the chat transcript as an ordered list.
type MemoryStore interface {
	Get(namespace, key string) (string, error)
	Set(namespace, key, value string) error
	Delete(namespace, key string) error

	Append(namespace, key, value string) error
	GetList(namespace, key string, limit int) ([]string, error)
	TrimList(namespace, key string, maxSize int) error
	ListLength(namespace, key string) (int, error)
}

// InMemoryStore is a thread-safe MemoryStore holding everything in process
// memory. It is the default backend and the fallback when a persistent
// backend fails. Data is lost on restart.
type InMemoryStore struct {
	mu    sync.RWMutex
	kv    map[string]map[string]string
	lists map[string]map[string][]string
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		kv:    make(map[string]map[string]string),
		lists: make(map[string]map[string][]string),
	}
}

func (s *InMemoryStore) Get(namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.kv[namespace]; ok {
		return ns[key], nil
	}
	return "", nil
}

func (s *InMemoryStore) Set(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv[namespace] == nil {
		s.kv[namespace] = make(map[string]string)
	}
	s.kv[namespace][key] = value
	return nil
}

func (s *InMemoryStore) Delete(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.kv[namespace]; ok {
		delete(ns, key)
	}
	return nil
}

func (s *InMemoryStore) Append(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists[namespace] == nil {
		s.lists[namespace] = make(map[string][]string)
	}
	s.lists[namespace][key] = append(s.lists[namespace][key], value)
	return nil
}

func (s *InMemoryStore) GetList(namespace, key string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []string
	if ns, ok := s.lists[namespace]; ok {
		items = ns[key]
	}
	if limit > 0 && limit < len(items) {
		items = items[len(items)-limit:]
	}
	result := make([]string, len(items))
	copy(result, items)
	return result, nil
}

func (s *InMemoryStore) TrimList(namespace, key string, maxSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.lists[namespace]; ok {
		if lst, ok := ns[key]; ok && len(lst) > maxSize {
			ns[key] = lst[len(lst)-maxSize:]
		}
	}
	return nil
}

func (s *InMemoryStore) ListLength(namespace, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.lists[namespace]; ok {
		return len(ns[key]), nil
	}
	return 0, nil
}
