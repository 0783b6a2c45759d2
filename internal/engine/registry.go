package engine

// Subscription identifies one registered handler.
// The zero value is valid and Unsubscribe on it does nothing.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the handler. Calling it more than once is harmless.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type registryEntry[T any] struct {
	id uint64
	fn func(T)
}

// registry is an append-only ordered list of handlers.
// Handlers run synchronously in registration order and are never deduplicated.
type registry[T any] struct {
	nextID  uint64
	entries []registryEntry[T]
}

func (r *registry[T]) subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, registryEntry[T]{id: id, fn: fn})
	return Subscription{cancel: func() { r.remove(id) }}
}

// remove rebuilds the slice so a notify loop already ranging over the old
// one is not disturbed by a handler that unsubscribes itself.
func (r *registry[T]) remove(id uint64) {
	kept := make([]registryEntry[T], 0, len(r.entries))
	for _, e := range r.entries {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

func (r *registry[T]) notify(v T) {
	for _, e := range r.entries {
		e.fn(v)
	}
}

func (r *registry[T]) len() int {
	return len(r.entries)
}
