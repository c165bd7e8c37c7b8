package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryValidate(t *testing.T) {
	valid := NewEntry{Question: "What is Linera?", Answer: "A protocol.", ChainID: "abc", BlockHeight: 0}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(n *NewEntry)
	}{
		{"blank question", func(n *NewEntry) { n.Question = "  " }},
		{"blank answer", func(n *NewEntry) { n.Answer = "" }},
		{"missing chain", func(n *NewEntry) { n.ChainID = "" }},
		{"negative height", func(n *NewEntry) { n.BlockHeight = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := valid
			tt.edit(&n)
			assert.Error(t, n.Validate())
		})
	}
}

func TestEntryClone(t *testing.T) {
	var nilEntry *Entry
	assert.Nil(t, nilEntry.Clone())

	e := &Entry{ID: 1, Question: "q", Answer: "a", ChainID: "c", Timestamp: time.Unix(100, 0)}
	c := e.Clone()
	assert.Equal(t, e, c)

	c.Answer = "changed"
	assert.Equal(t, "a", e.Answer)
}
