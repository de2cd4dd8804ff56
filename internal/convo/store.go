package convo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"yearcompass/internal/llm"
)

const (
	cacheKeyFmt = "convo:%s"
	cacheTTL    = 30 * time.Minute
)

// Store persists conversations in the database with a non-durable redis
// cache in front. The cache only ever mirrors the DB row; a cold cache is
// never an error.
type Store struct {
	db    *gorm.DB
	rdb   *redis.Client
	locks sync.Map // conversation id -> *sync.Mutex
}

// NewStore creates a store. rdb may be nil, which disables the cache.
func NewStore(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// Lock serializes turns for one conversation id. Racing appends would
// interleave or lose history; callers hold the lock across the full
// append-generate-append round.
func (s *Store) Lock(convID string) func() {
	mu, _ := s.locks.LoadOrStore(convID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// Active returns the conversation to continue. With a conversation id it
// looks that row up (creating it if unknown); without one it picks the
// user's most recent active conversation of the given type, or starts fresh.
func (s *Store) Active(ctx context.Context, userID, convType, convID string) (*Conversation, error) {
	if convID != "" {
		if conv := s.cacheGet(ctx, convID, userID); conv != nil {
			return conv, nil
		}
		var conv Conversation
		err := s.db.Where("id = ? AND user_id = ?", convID, userID).First(&conv).Error
		if err == nil {
			s.cacheSet(ctx, &conv)
			return &conv, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.create(ctx, convID, userID, convType)
	}

	var conv Conversation
	err := s.db.
		Where("user_id = ? AND type = ? AND active = ?", userID, convType, true).
		Order("created_at desc").
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.create(ctx, uuid.NewString(), userID, convType)
}

func (s *Store) create(ctx context.Context, id, userID, convType string) (*Conversation, error) {
	conv := Conversation{
		ID:       id,
		UserID:   userID,
		Type:     convType,
		Messages: []byte("[]"),
		Active:   true,
	}
	if err := s.db.Create(&conv).Error; err != nil {
		return nil, err
	}
	s.cacheSet(ctx, &conv)
	return &conv, nil
}

// Append adds turns to the history and persists the row.
func (s *Store) Append(ctx context.Context, conv *Conversation, turns ...llm.Turn) error {
	existing, err := conv.Turns()
	if err != nil {
		return err
	}
	if err := conv.SetTurns(append(existing, turns...)); err != nil {
		return err
	}
	if err := s.db.Save(conv).Error; err != nil {
		return err
	}
	s.cacheSet(ctx, conv)
	return nil
}

// Deactivate retires a conversation once its purpose is served.
func (s *Store) Deactivate(ctx context.Context, conv *Conversation) error {
	conv.Active = false
	if err := s.db.Model(conv).Update("active", false).Error; err != nil {
		return err
	}
	s.cacheDel(ctx, conv.ID)
	s.locks.Delete(conv.ID)
	return nil
}

func (s *Store) cacheGet(ctx context.Context, convID, userID string) *Conversation {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(cacheKeyFmt, convID)).Bytes()
	if err != nil {
		return nil
	}
	var conv Conversation
	if err := json.Unmarshal(raw, &conv); err != nil || conv.UserID != userID || !conv.Active {
		return nil
	}
	return &conv
}

func (s *Store) cacheSet(ctx context.Context, conv *Conversation) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(conv)
	if err != nil {
		return
	}
	_ = s.rdb.Set(ctx, fmt.Sprintf(cacheKeyFmt, conv.ID), raw, cacheTTL).Err()
}

func (s *Store) cacheDel(ctx context.Context, convID string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, fmt.Sprintf(cacheKeyFmt, convID)).Err()
}
