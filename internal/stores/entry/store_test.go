package entry

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(question string) entry.NewEntry {
	return entry.NewEntry{
		Question:    question,
		Answer:      "Linera runs many **microchains** in parallel.",
		ChainID:     "e476187f6ddfeb9d588c7b45d3df334d5501d6499b3f9ad5595cae86cce16a65",
		BlockHeight: 1,
	}
}

// storeFactories returns every store implementation under test
func storeFactories(t *testing.T) map[string]func() entry.Store {
	return map[string]func() entry.Store{
		"memory": func() entry.Store {
			return NewInMemoryStore()
		},
		"sqlite": func() entry.Store {
			store, err := NewSQLiteStore("")
			require.NoError(t, err)
			return store
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			store := factory()
			defer store.Close()
			ctx := context.Background()

			first, err := store.CreateEntry(ctx, newEntry("What is Linera?"))
			require.NoError(t, err)
			second, err := store.CreateEntry(ctx, newEntry("What is a microchain?"))
			require.NoError(t, err)

			assert.EqualValues(1, first.ID)
			assert.EqualValues(2, second.ID)
			assert.False(first.Timestamp.IsZero())

			got, err := store.GetEntry(ctx, first.ID)
			require.NoError(t, err)
			assert.Equal(first.ID, got.ID)
			assert.Equal("What is Linera?", got.Question)
			assert.Equal(first.Answer, got.Answer)
			assert.Equal(first.ChainID, got.ChainID)
			assert.Equal(first.BlockHeight, got.BlockHeight)
			assert.True(first.Timestamp.Equal(got.Timestamp))
		})
	}
}

func TestGetMissing(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory()
			defer store.Close()

			for _, id := range []int64{0, -1, 99} {
				_, err := store.GetEntry(context.Background(), id)
				assert.ErrorIs(t, err, entry.ErrNotFound, "id %d", id)
			}
		})
	}
}

func TestReadsAreRepeatable(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory()
			defer store.Close()
			ctx := context.Background()

			created, err := store.CreateEntry(ctx, newEntry("Q?"))
			require.NoError(t, err)

			first, err := store.GetEntry(ctx, created.ID)
			require.NoError(t, err)
			first.Answer = "mutated"

			second, err := store.GetEntry(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.Answer, second.Answer)
		})
	}
}

func TestCreateValidates(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory()
			defer store.Close()

			in := newEntry("Q?")
			in.Answer = "   "
			_, err := store.CreateEntry(context.Background(), in)
			assert.Error(t, err)
		})
	}
}

func TestInMemoryConcurrentCreate(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	ids := make(chan int64, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := store.CreateEntry(context.Background(), newEntry("Q?"))
			if err == nil {
				ids <- e.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}

func TestInMemoryCancelledContext(t *testing.T) {
	store := NewInMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetEntry(ctx, 1)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, entry.ErrNotFound))
}

func TestSQLiteFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "entries.sqlite")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	created, err := store.CreateEntry(context.Background(), newEntry("Q?"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetEntry(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q?", got.Question)
}

func TestOpenSelectsStore(t *testing.T) {
	store, err := Open(utils.NewConfig(nil))
	require.NoError(t, err)
	assert.IsType(t, &InMemoryStore{}, store)

	store, err = Open(utils.NewConfig(map[string]string{
		"SQLITE_PATH": filepath.Join(t.TempDir(), "entries.sqlite"),
	}))
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &Store{}, store)
}

func TestMySQLConfig(t *testing.T) {
	cfg := utils.NewConfig(map[string]string{
		"MYSQL_USER":          "root",
		"MYSQL_ROOT_PASSWORD": "secret",
		"MYSQL_HOST":          "db",
		"MYSQL_PORT":          "3307",
		"MYSQL_DATABASE":      "lineramind",
	})

	dbConfig := MySQLConfig(cfg)
	assert.Equal(t, "db:3307", dbConfig.Addr)
	assert.True(t, dbConfig.ParseTime)
	assert.Contains(t, dbConfig.FormatDSN(), "root:secret@tcp(db:3307)/lineramind")
	assert.Contains(t, dbConfig.FormatDSN(), "parseTime=true")
}
