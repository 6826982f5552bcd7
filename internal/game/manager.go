package game

import (
	"log"
	"sort"
	"strings"
	"sync"
)

// Manager 在内存里保存多局对局，按 ID 取用
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

func (m *Manager) NewGame() *Session {
	return m.add(NewSession())
}

func (m *Manager) NewGameFromFEN(fen string) (*Session, error) {
	s, err := NewSessionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(s), nil
}

func (m *Manager) add(s *Session) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[s.ID] = s
	log.Printf("game %s created", s.ID)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// Lookup 按 ID 前缀找对局，前缀必须唯一
func (m *Manager) Lookup(prefix string) (*Session, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrGameNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.games[prefix]; ok {
		return s, nil
	}
	var found *Session
	for id, s := range m.games {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguousID
		}
		found = s
	}
	if found == nil {
		return nil, ErrGameNotFound
	}
	return found, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	log.Printf("game %s removed", id)
	return nil
}

// IDs 按创建时间返回所有对局 ID
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.games))
	for id := range m.games {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := m.games[out[i]], m.games[out[j]]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return out[i] < out[j]
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
