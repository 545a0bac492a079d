// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"maps"
	"slices"
	"sync"
)

// SessionStorage is the ephemeral key/value area shared by the background
// and the app side. It never touches disk and is cleared on lock.
type SessionStorage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(keys ...string)
	Clear()
	Keys() []string
}

type memoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage returns an empty in-memory SessionStorage.
func NewMemoryStorage() SessionStorage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (s *memoryStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return slices.Clone(v), ok
}

func (s *memoryStorage) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
}

func (s *memoryStorage) Remove(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		wipe(s.data[k])
		delete(s.data, k)
	}
}

func (s *memoryStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.data {
		wipe(v)
		delete(s.data, k)
	}
}

func (s *memoryStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
