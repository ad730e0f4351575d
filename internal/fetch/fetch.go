package fetch

import (
	"net/http"
	"time"
)

const (
	defaultNewsBaseURL   = "https://newsapi.org/v2/everything"
	defaultEventsBaseURL = "https://www.eventbriteapi.com/v3/events/search/"

	requestTimeout = 10 * time.Second
	maxItems       = 3
)

// NewsItem is a single headline parsed at the provider boundary.
type NewsItem struct {
	Title  string
	URL    string
	Source string
}

// EventItem is a single upcoming event. StartDate is a calendar date
// (YYYY-MM-DD), no time component.
type EventItem struct {
	Name      string
	URL       string
	StartDate string
	Venue     string
}

// WarnFunc surfaces a non-fatal fetch problem to the user.
type WarnFunc func(message string)

// Client queries the two external data providers. A missing credential
// disables the corresponding source entirely; provider failures degrade
// to empty results and never propagate as errors.
type Client struct {
	httpClient *http.Client
	warn       WarnFunc

	newsKey   string
	eventsKey string

	newsBaseURL   string
	eventsBaseURL string

	now func() time.Time
}

func New(newsKey, eventsKey string, warn WarnFunc) *Client {
	if warn == nil {
		warn = func(string) {}
	}
	return &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		warn:          warn,
		newsKey:       newsKey,
		eventsKey:     eventsKey,
		newsBaseURL:   defaultNewsBaseURL,
		eventsBaseURL: defaultEventsBaseURL,
		now:           time.Now,
	}
}
