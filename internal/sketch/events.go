package sketch

type EventType int

const (
	EventSourcesReady EventType = iota
	EventLoadFailed
	EventSoundToggled
	EventAudioRangeChanged
)

type Event struct {
	Type    EventType
	Count   int     // sources ready
	Playing bool    // sound toggled
	Value   float64 // new audio range
	Err     error   // load failure
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
