package session

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore 测试与单机开发用，值同样走 JSON 序列化以贴近 RedisStore 行为
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func memKey(sid, key string) string { return sid + "/" + key }

func (s *MemoryStore) Get(_ context.Context, sid, key string, dest any) (bool, error) {
	s.mu.RLock()
	b, ok := s.data[memKey(sid, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (s *MemoryStore) Put(_ context.Context, sid, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[memKey(sid, key)] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Forget(_ context.Context, sid, key string) error {
	s.mu.Lock()
	delete(s.data, memKey(sid, key))
	s.mu.Unlock()
	return nil
}
