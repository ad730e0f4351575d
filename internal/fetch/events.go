package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// FetchEvents returns up to 3 upcoming events in the user's city within
// the next 30 days. Both a credential and a non-empty location are
// required; otherwise the source is disabled and no request is made.
func (c *Client) FetchEvents(ctx context.Context, location, profession string) []EventItem {
	if c.eventsKey == "" || location == "" {
		return nil
	}

	q := profession
	if q == "" {
		q = "networking"
	}
	now := c.now().UTC()
	params := url.Values{}
	params.Set("q", q)
	params.Set("location.address", location)
	params.Set("start_date.range_start", now.Format(time.RFC3339))
	params.Set("start_date.range_end", now.Add(30*24*time.Hour).Format(time.RFC3339))
	params.Set("token", c.eventsKey)
	params.Set("expand", "venue")

	body, err := c.get(ctx, c.eventsBaseURL, params)
	if err != nil {
		c.warn(fmt.Sprintf("failed to fetch events: %v", err))
		return nil
	}

	var payload struct {
		Events []struct {
			Name struct {
				Text string `json:"text"`
			} `json:"name"`
			URL   string `json:"url"`
			Start struct {
				Local string `json:"local"`
			} `json:"start"`
			Venue struct {
				Name string `json:"name"`
			} `json:"venue"`
		} `json:"events"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.warn(fmt.Sprintf("failed to fetch events: %v", err))
		return nil
	}

	var items []EventItem
	for _, ev := range payload.Events {
		if len(items) == maxItems {
			break
		}
		start := ev.Start.Local
		if len(start) > 10 {
			start = start[:10]
		}
		items = append(items, EventItem{
			Name:      ev.Name.Text,
			URL:       ev.URL,
			StartDate: start,
			Venue:     ev.Venue.Name,
		})
	}
	return items
}
