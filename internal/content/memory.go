package content

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore is the in-memory twin of MongoStore, used by unit tests.
// Documents are deep-copied on the way in and out so callers can never
// mutate stored state behind the store's back.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M // insertion order preserved
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func copyDoc(d bson.M) bson.M {
	cp := bson.M{}
	for k, v := range d {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		cp[k] = v
	}
	return cp
}

func orderOf(d bson.M) int {
	switch v := d["order"].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bson.M, 0, len(s.collections[collection]))
	for _, d := range s.collections[collection] {
		out = append(out, copyDoc(d))
	}
	// stable: ties keep insertion order
	sort.SliceStable(out, func(i, j int) bool { return orderOf(out[i]) < orderOf(out[j]) })
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.collections[collection] {
		if d["_id"] == id {
			return copyDoc(d), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], copyDoc(doc))
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, set bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.collections[collection] {
		if d["_id"] == id {
			for k, v := range copyDoc(set) {
				d[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, d := range docs {
		if d["_id"] == id {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if docs := s.collections[collection]; len(docs) > 0 {
		return copyDoc(docs[0]), nil
	}
	return nil, ErrNotFound
}
