package command

import "strings"

type Kind int

const (
	PlainChat Kind = iota
	Brief
)

const briefPrefix = "/brief"

// Route classifies raw user text. The only recognized command is
// /brief: case-insensitive, surrounding whitespace ignored, trailing
// text after the token ignored. Everything else is plain chat; routing
// never fails.
func Route(text string) Kind {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), briefPrefix) {
		return Brief
	}
	return PlainChat
}
