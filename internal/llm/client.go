package llm

import "context"

type Message struct {
	Role    string
	Content string
}

// Stream is a lazy sequence of text fragments produced by the model.
// Recv returns io.EOF once the model has finished; any other error
// means the transport failed mid-response and no further fragments
// will arrive.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Client generates a streamed completion for an ordered message list.
// The full transcript, system turns included, is the request payload.
type Client interface {
	Stream(ctx context.Context, messages []Message) (Stream, error)
}
