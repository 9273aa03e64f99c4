package tokenstore

import (
	"context"
	"sync"
)

// Memory keeps the session in process memory.
type Memory struct {
	mu      sync.RWMutex
	session Session
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session, nil
}

func (m *Memory) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()
	return nil
}
