package rcv

// Event types represented during tabulation
const (
	UnknownEvent EventType = iota
	BallotCastEvent
	BallotRejectedEvent
	BallotReassignedEvent
	BallotExhaustedEvent
	CandidateEliminatedEvent
	RoundCompleteEvent
	WinnerDeclaredEvent
)

// Names of event types
var eventTypeStrings = [...]string{
	"unknown", "ballotCast", "ballotRejected", "ballotReassigned",
	"ballotExhausted", "candidateEliminated", "roundComplete",
	"winnerDeclared",
}

//===========================================================================
// Event Types
//===========================================================================

// EventType is an enumeration of the kind of events that can occur.
type EventType uint16

// String returns the name of event types
func (t EventType) String() string {
	return eventTypeStrings[t]
}

// Callback is a function that can receive events.
type Callback func(Event) error

//===========================================================================
// Event Definition and Methods
//===========================================================================

// Event represents actions that occur during tabulation. Observers can
// register callbacks with the election to receive events as the rounds
// progress, e.g. to collect metrics or write an audit trail.
type Event interface {
	Type() EventType
	Source() interface{}
	Value() interface{}
}

// event is an internal implementation of the Event interface.
type event struct {
	etype  EventType
	source interface{}
	value  interface{}
}

// Type returns the event type.
func (e *event) Type() EventType {
	return e.etype
}

// Source returns the entity that dispatched the event.
func (e *event) Source() interface{} {
	return e.source
}

// Value returns the current value associated with the event.
func (e *event) Value() interface{} {
	return e.value
}

//===========================================================================
// Dispatcher
//===========================================================================

// NewDispatcher creates a dispatcher that passes events one at a time to
// each registered callback on behalf of the specified source.
func NewDispatcher(source interface{}) *Dispatcher {
	return &Dispatcher{source: source}
}

// Dispatcher delivers events synchronously to registered callbacks in the
// order they were registered. Tabulation is a single-threaded computation,
// so events are handled on the dispatching goroutine rather than through a
// buffered channel; a callback error stops delivery for that event.
type Dispatcher struct {
	source    interface{}
	callbacks []Callback
}

// Register a callback to receive dispatched events.
func (d *Dispatcher) Register(callback Callback) {
	d.callbacks = append(d.callbacks, callback)
}

// Dispatch an event of the specified type and value to all callbacks.
func (d *Dispatcher) Dispatch(etype EventType, value interface{}) error {
	e := &event{etype: etype, source: d.source, value: value}
	for _, callback := range d.callbacks {
		if err := callback(e); err != nil {
			return err
		}
	}
	return nil
}
