package shop

//go:generate mockgen -source=store.go -destination=store_mock.go -package=shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
)

// CartKey names the saved cart.
const CartKey = "shopping-cart"

// CartStore persists the cart lines between runs.
// Load of a cart that was never saved returns no lines and no error.
type CartStore interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, lines []LineItem) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the cart in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	lines []LineItem
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, lines []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([]LineItem, len(lines))
	copy(s.lines, lines)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return nil
}

// FileStore keeps the cart as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the cart is saved to.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(_ context.Context) ([]LineItem, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}
	return lines, nil
}

func (s *FileStore) Save(_ context.Context, lines []LineItem) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}

	if lines == nil {
		lines = []LineItem{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cart file: %w", err)
	}
	return nil
}

// RedisStore keeps the cart of one session under shopping-cart:<session>.
type RedisStore struct {
	client *redis.Client
	key    string
	exp    time.Duration // zero keeps the cart forever
}

// NewRedisStore creates a store for session with an optional expiration.
func NewRedisStore(client *redis.Client, session string, expiration time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		key:    CartKey + ":" + session,
		exp:    expiration,
	}
}

// Key returns the Redis key of the cart.
func (s *RedisStore) Key() string {
	return s.key
}

func (s *RedisStore) Load(ctx context.Context) ([]LineItem, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load cart", "key", s.key, "error", err)
		return nil, err
	}

	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse cart %s: %w", s.key, err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, lines []LineItem) error {
	if lines == nil {
		lines = []LineItem{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	err = s.client.Set(ctx, s.key, data, s.exp).Err()
	logger.Log.Debugw("cart saved", "key", s.key, "lines", len(lines), "error", err)
	return err
}

func (s *RedisStore) Clear(ctx context.Context) error {
	err := s.client.Del(ctx, s.key).Err()
	logger.Log.Debugw("cart cleared", "key", s.key, "error", err)
	return err
}
