package entry

import (
	"time"

	"github.com/ethanbaker/lineramind/pkg/entry"
)

// EntryModel is the database row of an entry. Entries are immutable, so the
// row carries no update or soft-delete columns.
type EntryModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Question    string    `gorm:"column:question;type:text;not null"`
	Answer      string    `gorm:"column:answer;type:text;not null"`
	ChainID     string    `gorm:"column:chain_id;size:128;not null;index"`
	BlockHeight int64     `gorm:"column:block_height;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

// TableName sets the table name for GORM
func (EntryModel) TableName() string {
	return "entries"
}

func (m *EntryModel) toEntry() *entry.Entry {
	return &entry.Entry{
		ID:          m.ID,
		Question:    m.Question,
		Answer:      m.Answer,
		ChainID:     m.ChainID,
		BlockHeight: m.BlockHeight,
		Timestamp:   m.CreatedAt.UTC(),
	}
}

// now is the creation timestamp used by every store. Millisecond precision
// survives a round trip through both database backends.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
