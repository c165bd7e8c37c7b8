package answer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/ethanbaker/lineramind/pkg/verify"
)

// Role of a conversation turn
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one earlier message of the conversation
type Turn struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// Answerer produces an answer for a question given the earlier conversation
type Answerer interface {
	Answer(ctx context.Context, question string, history []Turn) (string, error)
}

// New selects an answerer from the configuration. Without an OPENAI_API_KEY,
// or with DRY_RUN set, answers come from the static answerer.
func New(cfg *utils.Config, resolver *verify.Resolver) Answerer {
	if cfg.GetBool("DRY_RUN") || !cfg.Has("OPENAI_API_KEY") {
		log.Println("[ANSWER]: No model configured, using static answers")
		return NewStaticAnswerer()
	}

	return NewAgentAnswerer(cfg, resolver)
}

// transcript folds the history and the question into a single model input
func transcript(question string, history []Turn) string {
	if len(history) == 0 {
		return question
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		role := "User"
		if turn.Role == RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, content)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
