package prompt

import (
	"fmt"
	"strings"
	"time"

	"careermate/internal/fetch"
)

const noExternalData = "(No external data available)"

// BaseInstruction builds the system prompt a session starts with. The
// profession and location clauses are included only when known.
func BaseInstruction(profession, location string, now time.Time) string {
	var b strings.Builder
	b.WriteString("You are CareerMate, a multilingual professional assistant. ")
	b.WriteString("Today's date is ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString(".")
	if profession != "" {
		fmt.Fprintf(&b, " The user's profession is '%s'.", profession)
	}
	if location != "" {
		fmt.Fprintf(&b, " The user is located in %s.", location)
	}
	b.WriteString(" Curate relevant news and events, and provide clear, concise, and actionable feedback. ")
	b.WriteString("When asked for a daily briefing, provide a bullet summary in Korean, then offer deeper dives.")
	return b.String()
}

// BriefingAugmentation renders fetched external data as an ephemeral
// system message for the model. Sections for empty sources are omitted
// entirely; when both are empty an explicit marker tells the model no
// data was gathered, so it cannot invent any.
func BriefingAugmentation(news []fetch.NewsItem, events []fetch.EventItem) string {
	var b strings.Builder
	b.WriteString("You gathered the following data:\n\n")
	if len(news) > 0 {
		b.WriteString("Recent news headlines:\n")
		for _, n := range news {
			fmt.Fprintf(&b, "- %s (%s)\n", n.Title, n.Source)
		}
		b.WriteString("\n")
	}
	if len(events) > 0 {
		b.WriteString("Upcoming events:\n")
		for _, e := range events {
			fmt.Fprintf(&b, "- %s %s @ %s\n", e.StartDate, e.Name, e.Venue)
		}
		b.WriteString("\n")
	}
	if len(news) == 0 && len(events) == 0 {
		b.WriteString(noExternalData + "\n\n")
	}
	b.WriteString("Please craft a Korean daily briefing in bullet points (max 120 words), then suggest next actions.")
	return b.String()
}
