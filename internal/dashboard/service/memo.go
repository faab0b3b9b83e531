package service

import (
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"
)

// Memo caches results keyed by function name and normalized arguments.
// Entries never expire; Flush is the only invalidation.
type Memo struct {
	store *cache.Cache
}

func NewMemo() *Memo {
	return &Memo{store: cache.New(cache.NoExpiration, 0)}
}

// Key builds a cache key. String arguments are trimmed so that inputs differing
// only in surrounding whitespace share an entry.
func (m *Memo) Key(fn string, args ...interface{}) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, fn)
	for _, a := range args {
		if s, ok := a.(string); ok {
			parts = append(parts, strings.TrimSpace(s))
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return strings.Join(parts, "\x1f")
}

func (m *Memo) Get(key string) (interface{}, bool) {
	return m.store.Get(key)
}

func (m *Memo) Has(key string) bool {
	_, ok := m.store.Get(key)
	return ok
}

func (m *Memo) Set(key string, value interface{}) {
	m.store.Set(key, value, cache.NoExpiration)
}

func (m *Memo) Len() int {
	return m.store.ItemCount()
}

func (m *Memo) Flush() {
	m.store.Flush()
}

// memoize returns the cached value for key or computes and stores it.
// Failed computations are not cached.
func memoize[T any](m *Memo, key string, fn func() (T, error)) (T, error) {
	if v, ok := m.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	m.Set(key, v)
	return v, nil
}
