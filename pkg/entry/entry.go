package entry

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned (wrapped) by a Reader when no entry exists for an id
var ErrNotFound = errors.New("entry not found")

// Entry is a single question/answer record committed to a simulated chain
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	Question    string    `json:"question" yaml:"question"`
	Answer      string    `json:"answer" yaml:"answer"`
	ChainID     string    `json:"chainId" yaml:"chain_id"`
	BlockHeight int64     `json:"blockHeight" yaml:"block_height"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewEntry holds the caller-supplied fields of an entry. The store assigns the
// id and timestamp.
type NewEntry struct {
	Question    string
	Answer      string
	ChainID     string
	BlockHeight int64
}

// Validate checks the fields required before an entry can be created
func (n NewEntry) Validate() error {
	switch {
	case strings.TrimSpace(n.Question) == "":
		return errors.New("question cannot be empty")
	case strings.TrimSpace(n.Answer) == "":
		return errors.New("answer cannot be empty")
	case n.ChainID == "":
		return errors.New("chain_id cannot be empty")
	case n.BlockHeight < 0:
		return errors.New("block_height cannot be negative")
	}
	return nil
}

// Clone returns a copy of the entry
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// Reader is the read path of the record store. It must be side-effect free.
type Reader interface {
	GetEntry(ctx context.Context, id int64) (*Entry, error)
}

// Writer is the write path of the record store, used by the ask flow
type Writer interface {
	CreateEntry(ctx context.Context, in NewEntry) (*Entry, error)
}

// Store combines both paths of the record store
type Store interface {
	Reader
	Writer
	Close() error
}
