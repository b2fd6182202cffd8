// Package outline drives the per-result enrichment fan-out.
package outline

import (
	"context"
	"log"

	"pagescope/internal/eventbus"
	"pagescope/internal/gateway"
)

// Service fetches the page outline for every result of a completed
// search. Each item gets its own goroutine: no item waits on another, no
// completion order is promised, and there is no join. The fetcher
// normalizes its own failures, so a broken page costs exactly one
// OutlineFetched event with an absent outline.
//
// In-flight fetches are not cancelled when a newer search replaces the
// results; their completions still get published and the UI drops the
// stale ones by QueryID.
type Service struct {
	bus     eventbus.EventBus
	fetcher gateway.Fetcher
}

// NewService creates the outline service and subscribes it to the bus.
func NewService(bus eventbus.EventBus, fetcher gateway.Fetcher) *Service {
	s := &Service{
		bus:     bus,
		fetcher: fetcher,
	}

	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			s.fanOut(event)
		}
	})

	return s
}

func (s *Service) fanOut(event eventbus.SearchCompletedEvent) {
	if len(event.Results) == 0 {
		return
	}

	log.Printf("Fetching outlines for %d results of search %s", len(event.Results), event.QueryID)

	for i, result := range event.Results {
		go func(index int, pageURL string) {
			outline := s.fetcher.Fetch(context.Background(), pageURL)
			s.bus.Publish(eventbus.OutlineFetchedEvent{
				QueryID: event.QueryID,
				Index:   index,
				URL:     pageURL,
				Outline: outline,
			})
		}(i, result.URL)
	}
}
