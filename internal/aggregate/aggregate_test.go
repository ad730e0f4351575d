package aggregate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"careermate/internal/fetch"
)

// flakyFetcher returns data on the first call per source and empties
// afterwards, simulating a provider that breaks after the first use.
type flakyFetcher struct {
	newsCalls   int
	eventsCalls int
}

func (f *flakyFetcher) FetchNews(_ context.Context, profession string) []fetch.NewsItem {
	f.newsCalls++
	if f.newsCalls > 1 {
		return nil
	}
	return []fetch.NewsItem{{Title: "A", URL: "http://a", Source: "S"}}
}

func (f *flakyFetcher) FetchEvents(_ context.Context, location, profession string) []fetch.EventItem {
	f.eventsCalls++
	if f.eventsCalls > 1 {
		return nil
	}
	return []fetch.EventItem{{Name: "Meetup", URL: "http://m", StartDate: "2026-09-03", Venue: "Hall"}}
}

func TestAggregate_CacheHitSkipsSecondFetch(t *testing.T) {
	f := &flakyFetcher{}
	a := New(f)

	first := a.Aggregate(context.Background(), "designer", "Seoul")
	second := a.Aggregate(context.Background(), "designer", "Seoul")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached result differs (-first +second):\n%s", diff)
	}
	if f.newsCalls != 1 || f.eventsCalls != 1 {
		t.Fatalf("expected one fetch per source, got news=%d events=%d", f.newsCalls, f.eventsCalls)
	}
}

func TestAggregate_KeyIsExactPair(t *testing.T) {
	f := &flakyFetcher{}
	a := New(f)

	a.Aggregate(context.Background(), "designer", "Seoul")
	a.Aggregate(context.Background(), "designer", "seoul")

	if f.newsCalls != 2 {
		t.Fatalf("case-sensitive keys must not share entries, news calls = %d", f.newsCalls)
	}
}

func TestAggregate_EmptyResultsAreCachedToo(t *testing.T) {
	f := &flakyFetcher{newsCalls: 1, eventsCalls: 1} // next calls return nil
	a := New(f)

	res := a.Aggregate(context.Background(), "writer", "Busan")
	if len(res.News) != 0 || len(res.Events) != 0 {
		t.Fatalf("want empty tuple, got %+v", res)
	}

	a.Aggregate(context.Background(), "writer", "Busan")
	if f.newsCalls != 2 {
		t.Fatalf("empty tuple must still be cached, news calls = %d", f.newsCalls)
	}
}
