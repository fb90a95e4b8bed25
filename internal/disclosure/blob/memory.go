package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

var errMemoryDelete = errors.New("blob: injected delete failure")

// Memory is an in-process Gateway for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memoryObject

	// FailDelete, when set, is consulted for every key passed to DeleteBatch.
	FailDelete func(key string) bool
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string]memoryObject)}
}

func (m *Memory) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) (Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return Object{}, ErrNotFound
	}
	return Object{
		Body:        io.NopCloser(bytes.NewReader(obj.data)),
		ContentType: obj.contentType,
		Size:        int64(len(obj.data)),
	}, nil
}

func (m *Memory) DeleteBatch(ctx context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var failed []string
	for _, k := range keys {
		if m.FailDelete != nil && m.FailDelete(k) {
			failed = append(failed, k)
			continue
		}
		delete(m.objects, k)
	}
	if len(failed) > 0 {
		return &BatchError{Keys: failed, Err: errMemoryDelete}
	}
	return nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

// Has reports whether key is stored.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored blobs.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
