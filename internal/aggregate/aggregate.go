package aggregate

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"careermate/internal/fetch"
)

// Fetcher is the external-data boundary. Implementations degrade to
// empty results on failure and never return errors.
type Fetcher interface {
	FetchNews(ctx context.Context, profession string) []fetch.NewsItem
	FetchEvents(ctx context.Context, location, profession string) []fetch.EventItem
}

// Result is the tuple cached per (profession, location) pair.
type Result struct {
	News   []fetch.NewsItem
	Events []fetch.EventItem
}

type key struct {
	profession string
	location   string
}

// Aggregator caches fetched external data for the lifetime of the
// process. External data changes slowly relative to a chat session, so
// entries never expire.
type Aggregator struct {
	fetcher Fetcher

	mu    sync.Mutex
	cache map[key]Result
}

func New(fetcher Fetcher) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		cache:   make(map[key]Result),
	}
}

// Aggregate returns the news and events for the exact
// (profession, location) pair. A cache hit performs no network
// activity. On a miss both sources are fetched concurrently and the
// tuple is cached only once both have completed, degrade paths
// included.
func (a *Aggregator) Aggregate(ctx context.Context, profession, location string) Result {
	k := key{profession: profession, location: location}

	a.mu.Lock()
	if res, ok := a.cache[k]; ok {
		a.mu.Unlock()
		return res
	}
	a.mu.Unlock()

	var res Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.News = a.fetcher.FetchNews(gctx, profession)
		return nil
	})
	g.Go(func() error {
		res.Events = a.fetcher.FetchEvents(gctx, location, profession)
		return nil
	})
	_ = g.Wait()

	a.mu.Lock()
	a.cache[k] = res
	a.mu.Unlock()
	return res
}
