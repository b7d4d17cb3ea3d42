package navigation

import "sync"

type ScrollListener func(offsetY int)

// ScrollEvents fans scroll offsets out to subscribers. Each page owns its
// own instance; listeners are delivered offsets in publish order.
type ScrollEvents struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]ScrollListener
	order     []int
}

func NewScrollEvents() *ScrollEvents {
	return &ScrollEvents{
		listeners: make(map[int]ScrollListener),
	}
}

// Subscription is a registered listener. Close releases it.
type Subscription struct {
	events *ScrollEvents
	id     int
	once   sync.Once
}

func (e *ScrollEvents) Subscribe(listener ScrollListener) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = listener
	e.order = append(e.order, id)

	return &Subscription{events: e, id: id}
}

// Publish delivers offsetY to every current listener. Listeners run outside
// the lock so they may subscribe or close.
func (e *ScrollEvents) Publish(offsetY int) {
	e.mu.Lock()
	listeners := make([]ScrollListener, 0, len(e.order))
	for _, id := range e.order {
		listeners = append(listeners, e.listeners[id])
	}
	e.mu.Unlock()

	for _, listener := range listeners {
		listener(offsetY)
	}
}

func (e *ScrollEvents) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *ScrollEvents) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.listeners, id)
	for i, existing := range e.order {
		if existing == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Close unregisters the listener. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.events.remove(s.id)
	})
}
