package chain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Chain is a simulated microchain. Every committed entry is stamped with the
// chain id and the next block height.
type Chain struct {
	id     string
	writer entry.Writer

	mutex  sync.Mutex
	height int64

	cron *cron.Cron
}

// Options configures a chain
type Options struct {
	ID          string `json:"id" yaml:"id"`                     // Chain id, derived when empty
	StartHeight int64  `json:"start_height" yaml:"start_height"` // Height before the first block
	BlockSpec   string `json:"block_spec" yaml:"block_spec"`     // Cron spec for empty blocks, disabled when empty
}

// OptionsFromConfig reads the CHAIN_* keys
func OptionsFromConfig(cfg *utils.Config) *Options {
	return &Options{
		ID:          cfg.Get("CHAIN_ID"),
		StartHeight: cfg.GetInt64WithDefault("CHAIN_START_HEIGHT", 0),
		BlockSpec:   cfg.Get("CHAIN_BLOCK_SPEC"),
	}
}

// DeriveID returns a fresh 64 character hex chain id
func DeriveID() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}

// ValidateID rejects ids that cannot appear inside a proof identifier
func ValidateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("chain id cannot be empty")
	case strings.Contains(id, ":"):
		return fmt.Errorf("chain id %q cannot contain ':'", id)
	case strings.IndexFunc(id, func(r rune) bool { return r <= ' ' }) >= 0:
		return fmt.Errorf("chain id %q cannot contain whitespace", id)
	}
	return nil
}

// New creates a chain writing entries through writer. The block clock is not
// started until Start is called.
func New(writer entry.Writer, opts *Options) (*Chain, error) {
	if writer == nil {
		return nil, fmt.Errorf("a valid entry writer must be provided")
	}
	if opts == nil {
		opts = &Options{}
	}

	id := opts.ID
	if id == "" {
		id = DeriveID()
		log.Printf("[CHAIN]: Derived chain id %s\n", id)
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if opts.StartHeight < 0 {
		return nil, fmt.Errorf("start height cannot be negative")
	}

	c := &Chain{
		id:     id,
		writer: writer,
		height: opts.StartHeight,
		cron:   cron.New(),
	}

	if opts.BlockSpec != "" {
		if _, err := c.cron.AddFunc(opts.BlockSpec, c.advance); err != nil {
			return nil, fmt.Errorf("invalid block spec %q: %w", opts.BlockSpec, err)
		}
	}

	return c, nil
}

// ID returns the chain id
func (c *Chain) ID() string {
	return c.id
}

// Height returns the height of the latest block
func (c *Chain) Height() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.height
}

// Commit appends a question/answer pair as a new block
func (c *Chain) Commit(ctx context.Context, question, answer string) (*entry.Entry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, err := c.writer.CreateEntry(ctx, entry.NewEntry{
		Question:    question,
		Answer:      answer,
		ChainID:     c.id,
		BlockHeight: c.height + 1,
	})
	if err != nil {
		return nil, err
	}

	c.height++
	return e, nil
}

// advance produces an empty block
func (c *Chain) advance() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.height++
}

// Start runs the block clock
func (c *Chain) Start() {
	c.cron.Start()
}

// Stop halts the block clock and waits for a running tick to finish
func (c *Chain) Stop() {
	<-c.cron.Stop().Done()
}
