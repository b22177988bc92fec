package storefront

import (
	"context"
	"sync"
	"time"
)

// SearchFunc performs the actual catalog query
type SearchFunc func(ctx context.Context, query string) ([]Product, error)

// SearchResult is one delivered search outcome
type SearchResult struct {
	Query    string
	Products []Product
	Err      error
}

// Searcher debounces keystroke-level queries the way the page does:
// a query only hits the network after the input has been quiet for the
// debounce window, and a response is dropped if a newer query was
// issued while it was in flight.
type Searcher struct {
	search   SearchFunc
	debounce time.Duration
	deliver  func(SearchResult)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewSearcher creates a Searcher delivering results to the given
// callback. The callback runs on the goroutine that performed the
// query.
func NewSearcher(search SearchFunc, debounce time.Duration, deliver func(SearchResult)) *Searcher {
	return &Searcher{
		search:   search,
		debounce: debounce,
		deliver:  deliver,
	}
}

// Query schedules a search for the given text, resetting the debounce
// window and invalidating any in-flight query.
func (s *Searcher) Query(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, seq, query)
	})
}

// Stop cancels any pending query
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) run(ctx context.Context, seq uint64, query string) {
	if s.stale(seq) {
		return
	}

	products, err := s.search(ctx, query)

	// A newer query may have started while this one was in flight;
	// its results win, ours are dropped
	if s.stale(seq) {
		return
	}

	s.deliver(SearchResult{Query: query, Products: products, Err: err})
}

func (s *Searcher) stale(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq != s.seq
}
