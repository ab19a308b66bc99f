package paramstore

import (
	"sort"
	"strings"
	"sync"

	"github.com/keystash/keystash/pkg/proto"
)

// storedValue is one parameter at rest. The value is kept plaintext here; a
// real deployment encrypts with the named KMS key.
type storedValue struct {
	value    string
	tier     string
	typ      string
	tags     map[string]string
	kmsKeyID string
}

// MemoryStore is an in-memory parameter store with the same tier and naming
// rules the hosted service enforces. It is the backing store of the reference
// server and safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	params map[string]storedValue
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		params: make(map[string]storedValue),
	}
}

// Put validates and stores one parameter, overwriting any previous value at
// the same name.
func (s *MemoryStore) Put(req *proto.WriteRequest) error {
	if !strings.HasPrefix(req.Name, "/") || strings.TrimRight(req.Name, "/") == "" {
		return ErrInvalidName
	}
	if req.Type != proto.TypeEncryptedString {
		return ErrInvalidType
	}

	var limit int
	switch req.Tier {
	case proto.TierStandard:
		limit = proto.MaxStandardValueSize
	case proto.TierAdvanced, proto.TierIntelligentTiering:
		limit = proto.MaxAdvancedValueSize
	default:
		return ErrInvalidTier
	}
	if len(req.Value) > limit {
		return ErrValueTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.params[req.Name] = storedValue{
		value:    req.Value,
		tier:     req.Tier,
		typ:      req.Type,
		tags:     req.Tags,
		kmsKeyID: req.KMSKeyID,
	}
	return nil
}

// ListPage returns up to maxKeys entries under prefix in lexicographic name
// order, starting after marker. The returned marker is empty on the final
// page.
func (s *MemoryStore) ListPage(prefix, marker string, maxKeys int) ([]proto.Entry, string, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultPageSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.params))
	for name := range s.params {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var entries []proto.Entry
	nextMarker := ""
	for _, name := range names {
		if marker != "" && name <= marker {
			continue
		}
		if len(entries) == maxKeys {
			nextMarker = entries[len(entries)-1].Name
			break
		}
		entries = append(entries, proto.Entry{Name: name, Value: s.params[name].value})
	}
	return entries, nextMarker, nil
}

// Delete removes one parameter.
func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.params[name]; !ok {
		return ErrNotFound
	}
	delete(s.params, name)
	return nil
}

// Len returns the number of stored parameters.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.params)
}
