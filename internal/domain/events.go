package domain

import "github.com/google/uuid"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventOutlineFetched  EventType = "OutlineFetched"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when the user submits a query.
// QueryID identifies the submission; every downstream event carries it so
// consumers can tell which render generation a completion belongs to.
type SearchRequestedEvent struct {
	QueryID uuid.UUID
	Query   string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the search gateway responds
// successfully. Results preserve gateway order.
type SearchCompletedEvent struct {
	QueryID uuid.UUID
	Query   string
	Results []SearchResult
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the search gateway call fails.
// Connect distinguishes transport-level failures from gateway-level ones;
// the UI shows a different generic message for each.
type SearchFailedEvent struct {
	QueryID uuid.UUID
	Connect bool
	Err     error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// OutlineFetchedEvent is emitted once per result item when its outline
// fetch finishes. Outline is nil when the fetch failed. Index is the
// item's position in the SearchCompletedEvent that spawned the fetch.
type OutlineFetchedEvent struct {
	QueryID uuid.UUID
	Index   int
	URL     string
	Outline *Outline
}

func (e OutlineFetchedEvent) Type() EventType { return EventOutlineFetched }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
