package answer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/sanitize"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/openai/openai-go/v2/packages/param"
)

const defaultModel = "gpt-4o-mini"

const defaultInstructions = "You are LineraMind, an assistant that answers questions about the Linera protocol and its microchains. " +
	"Answer in short plain paragraphs. When the user mentions a proof identifier, call lookup_proof before answering."

// AgentAnswerer answers questions with an openai-agents-go agent
type AgentAnswerer struct {
	agent    *agents.Agent
	resolver *verify.Resolver
}

// NewAgentAnswerer builds the answer agent. Instructions are read from
// ANSWER_SYSPROMPT_PATH when it points at a readable file.
func NewAgentAnswerer(cfg *utils.Config, resolver *verify.Resolver) *AgentAnswerer {
	instructions := utils.LoadPromptWithFallback(cfg.Get("ANSWER_SYSPROMPT_PATH"), defaultInstructions)

	a := &AgentAnswerer{resolver: resolver}
	a.agent = agents.New("answer-agent").
		WithInstructions(instructions).
		WithModel(cfg.GetWithDefault("MODEL", defaultModel))

	if resolver != nil {
		a.agent = a.agent.WithTools(a.lookupProofTool())
	}

	return a
}

// Agent returns the underlying openai-agents-go instance
func (a *AgentAnswerer) Agent() *agents.Agent {
	return a.agent
}

// Answer runs the agent on the question
func (a *AgentAnswerer) Answer(ctx context.Context, question string, history []Turn) (string, error) {
	resp, err := agents.Run(ctx, a.agent, transcript(question, history))
	if err != nil {
		return "", fmt.Errorf("agent execution failed: %w", err)
	}

	output := strings.TrimSpace(fmt.Sprintf("%v", resp.FinalOutput))
	if output == "" {
		return "", errors.New("agent returned an empty answer")
	}
	return output, nil
}

// lookupProofTool lets the model read an earlier verified entry
func (a *AgentAnswerer) lookupProofTool() agents.FunctionTool {
	return agents.FunctionTool{
		Name:        "lookup_proof",
		Description: "Read the verified question and answer behind a LineraMind proof identifier (linera:<chainId>:<entryId>) or bare entry id",
		ParamsJSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"proof": map[string]any{
					"type":        "string",
					"description": "The proof identifier or numeric entry id",
				},
			},
			"additionalProperties": false,
			"required":             []string{"proof"},
		},
		StrictJSONSchema: param.NewOpt(true),
		OnInvokeTool: func(ctx context.Context, arguments string) (any, error) {
			return lookupProof(ctx, a.resolver, arguments)
		},
		IsEnabled: agents.FunctionToolEnabled(),
	}
}

// lookupProofResult is returned to the model by lookup_proof
type lookupProofResult struct {
	Status   string `json:"status"`
	ProofID  string `json:"proof_id,omitempty"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
}

func lookupProof(ctx context.Context, resolver *verify.Resolver, arguments string) (*lookupProofResult, error) {
	var args struct {
		Proof string `json:"proof"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	id, err := proof.Parse(args.Proof)
	if err != nil {
		return &lookupProofResult{Status: "invalid", Error: err.Error()}, nil
	}

	res := resolver.Resolve(ctx, &id)
	if !res.Verified() {
		out := &lookupProofResult{Status: res.State.String()}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		return out, nil
	}

	return &lookupProofResult{
		Status:   res.State.String(),
		ProofID:  proof.Encode(res.Entry),
		Question: res.Entry.Question,
		Answer:   sanitize.Sanitize(res.Entry.Answer),
	}, nil
}
