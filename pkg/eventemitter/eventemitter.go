package eventemitter

import "sync"

// EventEmitter delivers every emitted message to all its subscribers, in
// subscription order, on the goroutine calling Emit. The zero value is ready
// to use.
type EventEmitter[T any] struct {
	mutex       sync.Mutex
	subscribers []func(T)
}

// Subscribe registers a callback invoked once per emitted message
func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	eventEmitter.mutex.Lock()
	defer eventEmitter.mutex.Unlock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, callback)
}

// Emit notifies every subscriber with the message. Emitting with no
// subscribers is a no-op.
func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.Lock()
	subscribers := make([]func(T), len(eventEmitter.subscribers))
	copy(subscribers, eventEmitter.subscribers)
	eventEmitter.mutex.Unlock()
	for _, subscriber := range subscribers {
		subscriber(message)
	}
}
