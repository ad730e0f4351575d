package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// FetchNews returns up to 3 recent headlines related to the profession.
// Without a news credential the source is disabled and the result is
// empty with no network activity.
func (c *Client) FetchNews(ctx context.Context, profession string) []NewsItem {
	if c.newsKey == "" {
		return nil
	}

	q := profession
	if q == "" {
		q = "career"
	}
	params := url.Values{}
	params.Set("q", q)
	params.Set("language", "ko,en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprint(maxItems))
	params.Set("apiKey", c.newsKey)

	body, err := c.get(ctx, c.newsBaseURL, params)
	if err != nil {
		c.warn(fmt.Sprintf("failed to fetch news: %v", err))
		return nil
	}

	var payload struct {
		Articles []struct {
			Title  string `json:"title"`
			URL    string `json:"url"`
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.warn(fmt.Sprintf("failed to fetch news: %v", err))
		return nil
	}

	var items []NewsItem
	for _, art := range payload.Articles {
		if len(items) == maxItems {
			break
		}
		items = append(items, NewsItem{
			Title:  art.Title,
			URL:    art.URL,
			Source: art.Source.Name,
		})
	}
	return items
}

func (c *Client) get(ctx context.Context, baseURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
