package engine

// EventType identifies a gameplay event
type EventType int

const (
	EventSessionStarted EventType = iota
	EventObstacleHit
	EventCollectibleHit
	EventLevelUp
	EventGameOver
	EventScoreSubmitted
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "session_started"
	case EventObstacleHit:
		return "obstacle_hit"
	case EventCollectibleHit:
		return "collectible_hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventScoreSubmitted:
		return "score_submitted"
	default:
		return "unknown"
	}
}

// Event carries the payload of every event type; unused fields stay zero
type Event struct {
	Type   EventType
	Entity Entity // ObstacleHit, CollectibleHit
	Points int    // CollectibleHit
	Level  int    // LevelUp
	Score  int    // GameOver, ScoreSubmitted
}

// EventQueue buffers events raised during a tick until the loop dispatches them
// Owned by the simulation goroutine, not safe for concurrent use
type EventQueue struct {
	pending []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (q *EventQueue) Push(ev Event) {
	q.pending = append(q.pending, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// EventHandler receives routed events
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches events to handlers in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
}

// NewEventRouter creates a router with no handlers
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes one event
func (r *EventRouter) Dispatch(ev Event) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// maxDispatchRounds bounds handler-raised event cascades within one drain
const maxDispatchRounds = 8

// Drain dispatches queued events, including events raised by handlers, until the queue is empty
func (r *EventRouter) Drain(q *EventQueue) int {
	n := 0
	for round := 0; round < maxDispatchRounds; round++ {
		batch := q.Consume()
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			r.Dispatch(ev)
			n++
		}
	}
	return n
}

// HandlerCount returns the number of handlers registered for t
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
