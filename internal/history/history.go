package history

import "sync"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation, tagged with its role.
type Turn struct {
	Role    string
	Content string
}

// Transcript is the append-only history of one session. It always
// starts with exactly one system turn and no turn is ever mutated or
// removed after append. The orchestrator is the only writer; the mutex
// covers readers like surface replay and the interaction recorder.
type Transcript struct {
	mu    sync.RWMutex
	turns []Turn
}

func NewTranscript(baseInstruction string) *Transcript {
	return &Transcript{turns: []Turn{{Role: RoleSystem, Content: baseInstruction}}}
}

func (t *Transcript) AppendUser(content string) {
	t.append(Turn{Role: RoleUser, Content: content})
}

func (t *Transcript) AppendSystem(content string) {
	t.append(Turn{Role: RoleSystem, Content: content})
}

func (t *Transcript) AppendAssistant(content string) {
	t.append(Turn{Role: RoleAssistant, Content: content})
}

func (t *Transcript) append(turn Turn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, turn)
}

// All returns the full ordered history including system turns. This is
// the exact payload sent to the model. The returned slice is a copy.
func (t *Transcript) All() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Visible returns the history without system turns, in append order.
// This is what the user-facing surface renders.
func (t *Transcript) Visible() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []Turn
	for _, turn := range t.turns {
		if turn.Role == RoleSystem {
			continue
		}
		out = append(out, turn)
	}
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}
