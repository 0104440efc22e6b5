package gen

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// memSink is an in-memory Sink used to exercise the generators without a
// running store.
type memSink struct {
	mu      sync.Mutex
	inserts map[string][]interface{}
	upserts map[string][]upsertOp
	deletes map[string]int

	failWith error
}

type upsertOp struct {
	key map[string]interface{}
	doc interface{}
}

func newMemSink() *memSink {
	return &memSink{
		inserts: make(map[string][]interface{}),
		upserts: make(map[string][]upsertOp),
		deletes: make(map[string]int),
	}
}

func (m *memSink) InsertMany(_ context.Context, collection string, docs []interface{}) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts[collection] = append(m.inserts[collection], docs...)
	return nil
}

func (m *memSink) UpsertByKey(_ context.Context, collection string, key map[string]interface{}, doc interface{}) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts[collection] = append(m.upserts[collection], upsertOp{key: key, doc: doc})
	return nil
}

// Count mirrors the store: inserted documents plus distinct upsert keys.
func (m *memSink) Count(_ context.Context, collection string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make(map[string]bool)
	for _, op := range m.upserts[collection] {
		keys[fmt.Sprintf("%v", op.key)] = true
	}
	return int64(len(m.inserts[collection]) + len(keys)), nil
}

func (m *memSink) DeleteMatching(_ context.Context, collection string, _ map[string]interface{}) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes[collection]++
	return nil
}

var errSinkDown = errors.New("sink unavailable")
