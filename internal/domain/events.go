package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFetchStarted   EventType = "FetchStarted"
	EventFetchSucceeded EventType = "FetchSucceeded"
	EventFetchFailed    EventType = "FetchFailed"
	EventSearchCounted  EventType = "SearchCounted"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FetchStartedEvent is emitted when a list request is dispatched
type FetchStartedEvent struct {
	Seq   uint64
	Mode  Mode
	Query string
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted once per list request that returned a 2xx
// response with a decodable body, whether or not the UI still wants it.
type FetchSucceededEvent struct {
	Seq   uint64
	Mode  Mode
	Query string
	Count int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when the latest list request fails
type FetchFailedEvent struct {
	Seq   uint64
	Mode  Mode
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// SearchCountedEvent is emitted after the remote search counter was bumped
type SearchCountedEvent struct {
	Total int64
}

func (e SearchCountedEvent) Type() EventType { return EventSearchCounted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
