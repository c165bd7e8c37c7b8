package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ethanbaker/lineramind/internal/answer"
	"github.com/ethanbaker/lineramind/internal/chain"
	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/proof"
	"github.com/ethanbaker/lineramind/pkg/sdk"
)

// ErrEmptyQuestion is returned when a question is blank
var ErrEmptyQuestion = errors.New("question cannot be empty")

// ErrAnswerFailed wraps answer generation failures
var ErrAnswerFailed = errors.New("failed to generate answer")

// Service answers questions and commits them to the chain
type Service struct {
	answerer answer.Answerer
	chain    *chain.Chain
	reader   entry.Reader
}

// NewService creates the ai service
func NewService(answerer answer.Answerer, c *chain.Chain, reader entry.Reader) *Service {
	return &Service{answerer: answerer, chain: c, reader: reader}
}

// Ask generates an answer for the question and commits the pair as a new entry
func (s *Service) Ask(ctx context.Context, req *sdk.AskRequest) (*sdk.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	history := make([]answer.Turn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, answer.Turn{Role: turn.Role, Content: turn.Content})
	}

	text, err := s.answerer.Answer(ctx, question, history)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnswerFailed, err)
	}

	e, err := s.chain.Commit(ctx, question, text)
	if err != nil {
		return nil, fmt.Errorf("failed to commit entry: %w", err)
	}
	log.Printf("[AI]: Committed entry %d at height %d\n", e.ID, e.BlockHeight)

	return &sdk.AskResponse{
		Entry:   e,
		ProofID: proof.Encode(e),
		Label:   proof.FormatDisplay(e.ChainID, e.ID),
	}, nil
}

// GetEntry reads a committed entry
func (s *Service) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	return s.reader.GetEntry(ctx, id)
}
