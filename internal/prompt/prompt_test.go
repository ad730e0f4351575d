package prompt

import (
	"strings"
	"testing"
	"time"

	"careermate/internal/fetch"
)

var testDate = time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

func TestBaseInstruction_AlwaysHasIdentityAndDate(t *testing.T) {
	got := BaseInstruction("", "", testDate)
	if !strings.Contains(got, "You are CareerMate") {
		t.Fatalf("missing identity: %q", got)
	}
	if !strings.Contains(got, "2026-08-29") {
		t.Fatalf("missing current date: %q", got)
	}
	if strings.Contains(got, "The user's profession") {
		t.Fatalf("unexpected profession clause without profession: %q", got)
	}
	if strings.Contains(got, "located in") {
		t.Fatalf("unexpected location clause without location: %q", got)
	}
}

func TestBaseInstruction_OptionalClauses(t *testing.T) {
	got := BaseInstruction("UI/UX Designer", "Seoul", testDate)
	if !strings.Contains(got, "The user's profession is 'UI/UX Designer'.") {
		t.Fatalf("missing profession clause: %q", got)
	}
	if !strings.Contains(got, "The user is located in Seoul.") {
		t.Fatalf("missing location clause: %q", got)
	}
	if !strings.Contains(got, "daily briefing") {
		t.Fatalf("missing standing guidance: %q", got)
	}
}

func TestBriefingAugmentation_EmptyData(t *testing.T) {
	got := BriefingAugmentation(nil, nil)
	if !strings.Contains(got, "(No external data available)") {
		t.Fatalf("missing no-data marker: %q", got)
	}
	if strings.Contains(got, "Recent news headlines:") || strings.Contains(got, "Upcoming events:") {
		t.Fatalf("empty sections must be omitted: %q", got)
	}
	if !strings.Contains(got, "max 120 words") {
		t.Fatalf("missing briefing cap instruction: %q", got)
	}
}

func TestBriefingAugmentation_NewsOnly(t *testing.T) {
	news := []fetch.NewsItem{{Title: "A", URL: "http://a", Source: "S"}}
	got := BriefingAugmentation(news, nil)
	if !strings.Contains(got, "Recent news headlines:") {
		t.Fatalf("missing news section: %q", got)
	}
	if !strings.Contains(got, "- A (S)") {
		t.Fatalf("missing news line: %q", got)
	}
	if strings.Contains(got, "Upcoming events:") {
		t.Fatalf("events section must be omitted: %q", got)
	}
	if strings.Contains(got, "(No external data available)") {
		t.Fatalf("no-data marker must be omitted when news exists: %q", got)
	}
}

func TestBriefingAugmentation_EventsListDateNameVenue(t *testing.T) {
	events := []fetch.EventItem{{Name: "Design Meetup", URL: "http://m", StartDate: "2026-09-03", Venue: "Hall"}}
	got := BriefingAugmentation(nil, events)
	if !strings.Contains(got, "Upcoming events:") {
		t.Fatalf("missing events section: %q", got)
	}
	if !strings.Contains(got, "- 2026-09-03 Design Meetup @ Hall") {
		t.Fatalf("missing event line: %q", got)
	}
	if strings.Contains(got, "Recent news headlines:") {
		t.Fatalf("news section must be omitted: %q", got)
	}
}

func TestBriefingAugmentation_SectionOrder(t *testing.T) {
	news := []fetch.NewsItem{{Title: "A", Source: "S"}}
	events := []fetch.EventItem{{Name: "E", StartDate: "2026-09-03", Venue: "V"}}
	got := BriefingAugmentation(news, events)
	ni := strings.Index(got, "Recent news headlines:")
	ei := strings.Index(got, "Upcoming events:")
	if ni == -1 || ei == -1 || ni > ei {
		t.Fatalf("news must precede events: %q", got)
	}
}
