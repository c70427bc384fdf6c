package favorites_test

import (
	"errors"
	"testing"
	"vitrine/internal/favorites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestEncode(t *testing.T) {
	t.Run("sorted without duplicates", func(t *testing.T) {
		data, err := favorites.Encode([]int{7, 3, 7, 1})
		require.NoError(t, err)
		assert.Equal(t, "[1,3,7]", string(data))
	})

	t.Run("empty set is an empty array", func(t *testing.T) {
		data, err := favorites.Encode(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestDecode(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		ids, err := favorites.Decode([]byte("[7, 3, 3]"))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 7}, ids)
	})

	t.Run("empty array", func(t *testing.T) {
		ids, err := favorites.Decode([]byte("[]"))
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	for _, bad := range []string{"not json", "null", `{"a":1}`, `["1"]`, "", "[1.5]"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := favorites.Decode([]byte(bad))
			assert.ErrorIs(t, err, favorites.ErrMalformed)
		})
	}
}

func TestSet_Load(t *testing.T) {
	t.Run("missing key yields empty set", func(t *testing.T) {
		logger, logs := newObservedLogger()
		s := favorites.New(favorites.NewMemoryStorage(), favorites.WithLogger(logger))

		assert.Empty(t, s.Load())
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("malformed value yields empty set and a warning", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		require.NoError(t, store.Set(favorites.StorageKey, []byte("not json")))
		logger, logs := newObservedLogger()
		s := favorites.New(store, favorites.WithLogger(logger))

		assert.Empty(t, s.Load())
		require.Equal(t, 1, logs.FilterMessage("ignoring malformed favorites").Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("stored ids are restored", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		require.NoError(t, store.Set(favorites.StorageKey, []byte("[3,7]")))
		s := favorites.New(store)

		assert.Equal(t, []int{3, 7}, s.Load())
		assert.True(t, s.IsFavorite(3))
		assert.True(t, s.IsFavorite(7))
		assert.False(t, s.IsFavorite(1))
	})

	t.Run("read error yields empty set", func(t *testing.T) {
		logger, logs := newObservedLogger()
		s := favorites.New(failingStorage{}, favorites.WithLogger(logger))

		assert.Empty(t, s.Load())
		assert.Equal(t, 1, logs.FilterMessage("failed to read favorites").Len())
	})

	t.Run("nil storage", func(t *testing.T) {
		s := favorites.New(nil)
		assert.Empty(t, s.Load())
		assert.True(t, s.Toggle(1))
	})

	t.Run("custom key", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		s := favorites.New(store, favorites.WithKey("gallery"))
		s.Toggle(4)

		snap := store.Snapshot()
		assert.Equal(t, "[4]", string(snap["gallery"]))
		assert.NotContains(t, snap, favorites.StorageKey)
	})
}

func TestSet_Toggle(t *testing.T) {
	t.Run("adds then removes", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		s := favorites.New(store)

		assert.True(t, s.Toggle(5))
		assert.True(t, s.IsFavorite(5))
		assert.Equal(t, "[5]", string(store.Snapshot()[favorites.StorageKey]))

		assert.False(t, s.Toggle(5))
		assert.False(t, s.IsFavorite(5))
		assert.Equal(t, "[]", string(store.Snapshot()[favorites.StorageKey]))
	})

	t.Run("write failure keeps the in-memory change", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		store.SetErr = errors.New("quota exceeded")
		logger, logs := newObservedLogger()
		s := favorites.New(store, favorites.WithLogger(logger))

		assert.True(t, s.Toggle(2))
		assert.True(t, s.IsFavorite(2))

		entries := logs.FilterMessage("failed to persist favorites").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Empty(t, store.Snapshot())
	})

	t.Run("reload sees persisted state", func(t *testing.T) {
		store := favorites.NewMemoryStorage()
		first := favorites.New(store)
		first.Toggle(9)
		first.Toggle(2)

		second := favorites.New(store)
		assert.Equal(t, []int{2, 9}, second.Load())
	})
}

func TestSet_Dangling(t *testing.T) {
	store := favorites.NewMemoryStorage()
	require.NoError(t, store.Set(favorites.StorageKey, []byte("[1,42,99]")))
	s := favorites.New(store)
	s.Load()

	dangling := s.Dangling(func(id int) bool { return id < 10 })

	assert.Equal(t, []int{42, 99}, dangling)
	assert.Equal(t, 3, s.Len())
}

type failingStorage struct{}

func (failingStorage) Get(string) ([]byte, error) { return nil, errors.New("disk unavailable") }
func (failingStorage) Set(string, []byte) error { return errors.New("disk unavailable") }
