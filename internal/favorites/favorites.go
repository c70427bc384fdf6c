package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// StorageKey is the key holding the JSON array of favorite item ids.
const StorageKey = "favorites"

var ErrMalformed = errors.New("favorites value is not a JSON array of integers")

// Encode renders ids as a JSON array in ascending order without duplicates.
func Encode(ids []int) ([]byte, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted == nil {
		sorted = []int{}
	}
	return json.Marshal(sorted)
}

// Decode parses a stored favorites value. Duplicate ids collapse to one.
func Decode(data []byte) ([]int, error) {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if ids == nil {
		// "null" decodes without error but is not an array.
		return nil, ErrMalformed
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Set is the session's favorites. It is not safe for concurrent use; the
// owning controller serialises every call.
type Set struct {
	storage Storage
	key     string
	logger  *zap.Logger
	ids     map[int]struct{}
}

type Option func(*Set)

func WithLogger(l *zap.Logger) Option {
	return func(s *Set) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithKey(key string) Option {
	return func(s *Set) {
		s.key = key
	}
}

func New(storage Storage, opts ...Option) *Set {
	s := &Set{
		storage: storage,
		key:     StorageKey,
		logger:  zap.NewNop(),
		ids:     make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory set with the persisted one. Missing or
// unreadable data yields an empty set; Load never fails.
func (s *Set) Load() []int {
	s.ids = make(map[int]struct{})

	if s.storage == nil {
		return nil
	}

	data, err := s.storage.Get(s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read favorites", zap.String("key", s.key), zap.Error(err))
		return nil
	}

	ids, err := Decode(data)
	if err != nil {
		s.logger.Warn("ignoring malformed favorites",
			zap.String("key", s.key),
			zap.ByteString("value", data),
			zap.Error(err))
		return nil
	}

	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s.IDs()
}

// Toggle flips membership of id, persists the full set, and returns the new
// membership. A failed write is logged; the in-memory set keeps the change.
func (s *Set) Toggle(id int) bool {
	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.persist()
	return !present
}

func (s *Set) IsFavorite(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Set) Len() int {
	return len(s.ids)
}

// Dangling returns members for which exists reports false. The set itself is
// left untouched.
func (s *Set) Dangling(exists func(id int) bool) []int {
	var dangling []int
	for _, id := range s.IDs() {
		if !exists(id) {
			dangling = append(dangling, id)
		}
	}
	if len(dangling) > 0 {
		s.logger.Debug("favorites reference unknown items", zap.Ints("ids", dangling))
	}
	return dangling
}

func (s *Set) persist() {
	if s.storage == nil {
		return
	}

	data, err := Encode(s.IDs())
	if err != nil {
		s.logger.Error("failed to encode favorites", zap.Error(err))
		return
	}
	if err := s.storage.Set(s.key, data); err != nil {
		s.logger.Error("failed to persist favorites",
			zap.String("key", s.key),
			zap.Int("count", len(s.ids)),
			zap.Error(err))
	}
}
