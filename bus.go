package cardtable

// Topic names a channel on the Bus.
type Topic string

const (
	TopicDragEnded  Topic = "drag-ended"
	TopicDragEnter  Topic = "drag-enter"
	TopicDragLeave  Topic = "drag-leave"
	TopicCardUpdate Topic = "card-update"
)

// Event is a message carried by the Bus. Every payload type is bound to
// exactly one topic.
type Event interface {
	Topic() Topic
}

// DragEnded is emitted once per completed drag session.
type DragEnded struct {
	Position Vec2   // where the dragged entity was released
	SourceID string // the dragged entity
	TargetID string // the resolved drop target; empty when there is none
}

// Topic implements Event.
func (DragEnded) Topic() Topic { return TopicDragEnded }

// HasTarget reports whether the drop resolved to a target.
func (e DragEnded) HasTarget() bool { return e.TargetID != "" }

// DragEnter is emitted when the dragged entity starts overlapping a target.
type DragEnter struct {
	DraggedID string
	TargetID  string
}

// Topic implements Event.
func (DragEnter) Topic() Topic { return TopicDragEnter }

// DragLeave is emitted when the dragged entity stops overlapping a target.
type DragLeave struct {
	DraggedID string
	TargetID  string
}

// Topic implements Event.
func (DragLeave) Topic() Topic { return TopicDragLeave }

// CardUpdate merges new state into a card.
type CardUpdate struct {
	CardID             string
	Placeholder        string
	TransitionPosition Vec2
}

// Topic implements Event.
func (CardUpdate) Topic() Topic { return TopicCardUpdate }

type busHandler struct {
	id uint32
	fn func(Event)
}

// Bus is a synchronous publish/subscribe channel. It is not safe for
// concurrent use; everything runs on the game loop.
type Bus struct {
	handlers map[Topic][]busHandler
	nextID   uint32
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Topic][]busHandler)}
}

// Handle allows removing a single subscription.
type Handle struct {
	id    uint32
	topic Topic
	bus   *Bus
}

// Remove unsubscribes the handler. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.bus == nil {
		return
	}
	hs := h.bus.handlers[h.topic]
	for i := range hs {
		if hs[i].id == h.id {
			// Copy instead of shifting in place: an Emit in progress may be
			// ranging over the old slice.
			next := make([]busHandler, 0, len(hs)-1)
			next = append(next, hs[:i]...)
			next = append(next, hs[i+1:]...)
			h.bus.setHandlers(h.topic, next)
			return
		}
	}
}

// On subscribes fn to topic.
func (b *Bus) On(topic Topic, fn func(Event)) Handle {
	b.nextID++
	id := b.nextID
	hs := b.handlers[topic]
	next := make([]busHandler, len(hs), len(hs)+1)
	copy(next, hs)
	b.handlers[topic] = append(next, busHandler{id: id, fn: fn})
	return Handle{id: id, topic: topic, bus: b}
}

// Off removes every handler subscribed to topic.
func (b *Bus) Off(topic Topic) {
	delete(b.handlers, topic)
}

// Emit delivers ev to the handlers of its topic in subscription order.
// Handlers added during Emit are not called for ev; handlers removed during
// Emit are not called if they have not run yet.
func (b *Bus) Emit(ev Event) {
	topic := ev.Topic()
	hs := b.handlers[topic]
	for _, h := range hs {
		if !b.subscribed(topic, h.id) {
			continue
		}
		h.fn(ev)
	}
}

// Len returns the number of handlers subscribed to topic.
func (b *Bus) Len(topic Topic) int {
	return len(b.handlers[topic])
}

func (b *Bus) setHandlers(topic Topic, hs []busHandler) {
	if len(hs) == 0 {
		delete(b.handlers, topic)
		return
	}
	b.handlers[topic] = hs
}

func (b *Bus) subscribed(topic Topic, id uint32) bool {
	for _, h := range b.handlers[topic] {
		if h.id == id {
			return true
		}
	}
	return false
}
