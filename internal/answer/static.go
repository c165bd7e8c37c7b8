package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// StaticAnswerer returns a fixed demo answer that quotes the question. It is
// used when no model is configured.
type StaticAnswerer struct{}

// NewStaticAnswerer creates a static answerer
func NewStaticAnswerer() *StaticAnswerer {
	return &StaticAnswerer{}
}

// Answer returns the demo answer for question
func (s *StaticAnswerer) Answer(ctx context.Context, question string, history []Turn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question cannot be empty")
	}

	return fmt.Sprintf("Linera is a protocol where every user and application runs on its own **microchain**. "+
		"Blocks on different microchains are validated in parallel, which keeps latency predictable as usage grows.\n\n"+
		"This answer was committed to a simulated microchain and received a deterministic proof identifier.\n\n"+
		"Demo answer for: `%s`", question), nil
}
