package core

// Event represents a sandbox event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtNotice            EventType = iota // Payload: string shown to the user
	EvtObjectPlaced                       // Payload: maplib.PlacedObject
	EvtPlacementRejected                  // Payload: error
	EvtToolSelected                       // Payload: Tool
	EvtRotated                            // Payload: maplib.Rotation
	EvtReset
	EvtTerrainTick // Payload: int, deltas applied
	EvtPaused      // Payload: bool
)

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Notify queues a user-facing notice
func (eb *EventBus) Notify(msg string) {
	eb.Emit(Event{Type: EvtNotice, Payload: msg})
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events. Handlers may emit; those events
// are delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
