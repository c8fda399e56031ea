package cache

import (
	"container/list"
	"sync"

	"github.com/oarkflow/xsync"
)

// LRU is a fixed-capacity least-recently-used cache. Lookups go through an
// xsync map; recency order is kept in a doubly linked list guarded by a
// mutex, so the cache is safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	cache    xsync.IMap[K, *list.Element]
	list     *list.List
	mu       sync.Mutex
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: capacity,
		cache:    xsync.NewMap[K, *list.Element](),
		list:     list.New(),
	}
}

func (l *LRU[K, V]) Get(key K) (V, bool) {
	if ele, ok := l.cache.Get(key); ok {
		l.mu.Lock()
		l.list.MoveToFront(ele)
		l.mu.Unlock()
		return ele.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (l *LRU[K, V]) Put(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ele, ok := l.cache.Get(key); ok {
		l.list.MoveToFront(ele)
		ele.Value.(*entry[K, V]).value = value
		return
	}

	ele := l.list.PushFront(&entry[K, V]{key, value})
	l.cache.Set(key, ele)

	if l.list.Len() > l.capacity {
		l.removeOldest()
	}
}

func (l *LRU[K, V]) removeOldest() (K, V, bool) {
	var k K
	var v V
	ele := l.list.Back()
	if ele != nil {
		l.list.Remove(ele)
		if ele.Value != nil {
			kv := ele.Value.(*entry[K, V])
			l.cache.Del(kv.key)
			return kv.key, kv.value, true
		}
	}
	return k, v, false
}

func (l *LRU[K, V]) Remove(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ele, ok := l.cache.Get(key); ok {
		l.list.Remove(ele)
		l.cache.Del(key)
	}
}

func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Len()
}
