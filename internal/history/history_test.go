package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranscriptStartsWithSystemTurn(t *testing.T) {
	tr := NewTranscript("base instruction")

	all := tr.All()
	if len(all) != 1 {
		t.Fatalf("want exactly one initial turn, got %d", len(all))
	}
	if all[0].Role != RoleSystem || all[0].Content != "base instruction" {
		t.Fatalf("unexpected initial turn: %+v", all[0])
	}
	if len(tr.Visible()) != 0 {
		t.Fatalf("system turn must not be visible")
	}
}

func TestTranscriptAppendOrderAndVisibility(t *testing.T) {
	tr := NewTranscript("base")
	tr.AppendUser("hello")
	tr.AppendSystem("augmentation")
	tr.AppendAssistant("hi")

	wantAll := []Turn{
		{Role: RoleSystem, Content: "base"},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleSystem, Content: "augmentation"},
		{Role: RoleAssistant, Content: "hi"},
	}
	if diff := cmp.Diff(wantAll, tr.All()); diff != "" {
		t.Fatalf("All mismatch (-want +got):\n%s", diff)
	}

	wantVisible := []Turn{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	}
	if diff := cmp.Diff(wantVisible, tr.Visible()); diff != "" {
		t.Fatalf("Visible mismatch (-want +got):\n%s", diff)
	}
}

func TestTranscriptAppendOnly(t *testing.T) {
	tr := NewTranscript("base")
	prevLen := tr.Len()
	tr.AppendUser("one")
	tr.AppendAssistant("two")
	if tr.Len() < prevLen {
		t.Fatalf("length decreased: %d -> %d", prevLen, tr.Len())
	}

	// Mutating a returned slice must not affect internal state.
	all := tr.All()
	all[0] = Turn{Role: RoleUser, Content: "mutated"}
	if got := tr.All()[0]; got.Content != "base" {
		t.Fatalf("internal state mutated via returned slice: %+v", got)
	}

	vis := tr.Visible()
	vis[0] = Turn{Role: RoleUser, Content: "mutated"}
	if got := tr.Visible()[0]; got.Content != "one" {
		t.Fatalf("internal state mutated via visible slice: %+v", got)
	}
}

func TestVisibleIsRestartable(t *testing.T) {
	tr := NewTranscript("base")
	tr.AppendUser("hello")

	first := tr.Visible()
	second := tr.Visible()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Visible must be re-derivable (-first +second):\n%s", diff)
	}
}
