// Package search runs search gateway calls in response to bus events.
package search

import (
	"context"
	"errors"
	"log"

	"pagescope/internal/eventbus"
	"pagescope/internal/gateway"
)

// Service listens for search requests and publishes the outcome. Requests
// are never cancelled or de-duplicated: when a second query is submitted
// while the first is in flight, both run and both completions are
// published. The UI adopts whichever arrives last.
type Service struct {
	bus    eventbus.EventBus
	client gateway.Searcher
}

// NewService creates the search service and subscribes it to the bus.
func NewService(bus eventbus.EventBus, client gateway.Searcher) *Service {
	s := &Service{
		bus:    bus,
		client: client,
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			go s.run(event)
		}
	})

	return s
}

func (s *Service) run(event eventbus.SearchRequestedEvent) {
	results, err := s.client.Search(context.Background(), event.Query)
	if err != nil {
		log.Printf("Search %s (%q) failed: %v", event.QueryID, event.Query, err)
		s.bus.Publish(eventbus.SearchFailedEvent{
			QueryID: event.QueryID,
			Connect: errors.Is(err, gateway.ErrConnect),
			Err:     err,
		})
		return
	}

	log.Printf("Search %s (%q) returned %d results", event.QueryID, event.Query, len(results))
	s.bus.Publish(eventbus.SearchCompletedEvent{
		QueryID: event.QueryID,
		Query:   event.Query,
		Results: results,
	})
}
