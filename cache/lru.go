package cache

import "container/list"

// lruOrder tracks access recency using a doubly-linked list. The least
// recently accessed key sits at the back. Entries that share an access
// timestamp keep their list order, so eviction ties resolve
// deterministically by insertion order.
type lruOrder[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

func newLRUOrder[K comparable]() *lruOrder[K] {
	return &lruOrder[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

// touch marks the key as most recently accessed.
func (l *lruOrder[K]) touch(key K) {
	if elem, ok := l.items[key]; ok {
		l.order.MoveToFront(elem)
	}
}

// push inserts the key as most recently accessed, or touches it if present.
func (l *lruOrder[K]) push(key K) {
	if elem, ok := l.items[key]; ok {
		l.order.MoveToFront(elem)
		return
	}
	l.items[key] = l.order.PushFront(key)
}

// oldest removes and returns the least recently accessed key.
func (l *lruOrder[K]) oldest() (K, bool) {
	elem := l.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	l.order.Remove(elem)
	delete(l.items, key)
	return key, true
}

func (l *lruOrder[K]) remove(key K) {
	if elem, ok := l.items[key]; ok {
		l.order.Remove(elem)
		delete(l.items, key)
	}
}

func (l *lruOrder[K]) reset() {
	l.order.Init()
	clear(l.items)
}
