package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/openneighborhood/neighborhood/internal/constants"
)

// EventType identifies a bus event.
type EventType string

const (
	EventLog EventType = "log"

	// Console session changes, for the status bar.
	EventConsoleConnected    EventType = "console_connected"
	EventConsoleDisconnected EventType = "console_disconnected"

	// Transfer lifecycle, published by Console implementations.
	EventTransferStarted   EventType = "transfer_started"
	EventTransferProgress  EventType = "transfer_progress"
	EventTransferCompleted EventType = "transfer_completed"
	EventTransferFailed    EventType = "transfer_failed"
)

// LogLevel defines log severity levels.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Event is anything published on the EventBus.
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// LogEvent is a user-facing log line.
type LogEvent struct {
	BaseEvent
	Level   LogLevel
	Message string
	Error   error
}

// ConsoleEvent reports a session change.
type ConsoleEvent struct {
	BaseEvent
	Name    string
	Address string
}

// TransferDirection tells uploads from downloads.
type TransferDirection string

const (
	Download TransferDirection = "download"
	Upload   TransferDirection = "upload"
)

// TransferEvent tracks one file or directory transfer.
type TransferEvent struct {
	BaseEvent
	ID         string // unique per transfer
	Direction  TransferDirection
	Name       string // display name
	RemotePath string
	LocalPath  string
	Size       int64 // total bytes, 0 when unknown
	Bytes      int64 // bytes moved so far
	Error      error
}

// Progress returns Bytes/Size in 0..1, or 0 when the size is unknown.
func (e *TransferEvent) Progress() float64 {
	if e.Size <= 0 {
		return 0
	}
	p := float64(e.Bytes) / float64(e.Size)
	if p > 1 {
		p = 1
	}
	return p
}

// EventBus fans events out to buffered subscriber channels.
// Publishing never blocks: events for a full subscriber are dropped and counted.
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64
}

// NewEventBus creates a bus whose subscriber channels hold bufferSize events.
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = constants.EventBusDefaultBuffer
	}
	if bufferSize > constants.EventBusMaxBuffer {
		bufferSize = constants.EventBusMaxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel receiving the given event types.
// On a closed bus the returned channel is already closed.
func (eb *EventBus) Subscribe(types ...EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, eb.bufferSize)
	if eb.closed {
		close(ch)
		return ch
	}
	for _, t := range types {
		eb.subscribers[t] = append(eb.subscribers[t], ch)
	}
	return ch
}

// SubscribeAll returns a channel receiving every event.
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, eb.bufferSize)
	if eb.closed {
		close(ch)
		return ch
	}
	eb.all = append(eb.all, ch)
	return ch
}

// Publish delivers event to every interested subscriber without blocking.
// A nil bus discards the event.
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}
	for _, ch := range eb.subscribers[event.Type()] {
		eb.send(ch, event)
	}
	for _, ch := range eb.all {
		eb.send(ch, event)
	}
}

func (eb *EventBus) send(ch chan Event, event Event) {
	select {
	case ch <- event:
	default:
		eb.droppedEvents.Add(1)
	}
}

// Unsubscribe detaches ch from every event type and closes it.
func (eb *EventBus) Unsubscribe(ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	var found chan Event
	for t, subs := range eb.subscribers {
		kept := subs[:0]
		for _, sub := range subs {
			if sub == ch {
				found = sub
				continue
			}
			kept = append(kept, sub)
		}
		eb.subscribers[t] = kept
	}
	kept := eb.all[:0]
	for _, sub := range eb.all {
		if sub == ch {
			found = sub
			continue
		}
		kept = append(kept, sub)
	}
	eb.all = kept

	if found != nil {
		close(found)
	}
}

// Close closes every subscriber channel. Later publishes are discarded.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}
	eb.closed = true

	seen := make(map[chan Event]bool)
	for _, subs := range eb.subscribers {
		for _, ch := range subs {
			if !seen[ch] {
				seen[ch] = true
				close(ch)
			}
		}
	}
	for _, ch := range eb.all {
		close(ch)
	}
}

// DroppedEventCount returns how many events were dropped on full buffers.
func (eb *EventBus) DroppedEventCount() int64 {
	return eb.droppedEvents.Load()
}

// PublishLog publishes a LogEvent.
func (eb *EventBus) PublishLog(level LogLevel, message string, err error) {
	eb.Publish(&LogEvent{
		BaseEvent: BaseEvent{EventType: EventLog, Time: time.Now()},
		Level:     level,
		Message:   message,
		Error:     err,
	})
}

// PublishConsole publishes a console session change.
func (eb *EventBus) PublishConsole(eventType EventType, name, address string) {
	eb.Publish(&ConsoleEvent{
		BaseEvent: BaseEvent{EventType: eventType, Time: time.Now()},
		Name:      name,
		Address:   address,
	})
}
