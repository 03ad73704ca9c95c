package session

import (
	"context"          // Context for store operations
	"crypto/rand"      // Session ID generation
	"encoding/hex"     // Session ID encoding
	"errors"           // Sentinel errors
	"sync"             // Locking for the memory store
	"time"             // TTL handling

	"github.com/redis/go-redis/v9" // Redis client
)

// ErrNotFound is returned when a session ID does not resolve to a live session
var ErrNotFound = errors.New("session not found")

// Store keeps server-side session state. A session holds only the username of
// the authenticated principal; roles are always looked up live. Destroy makes
// the session unusable immediately, regardless of what cookies are still in
// the wild.
type Store interface {
	Create(ctx context.Context, username string) (string, error) // Returns the new session ID
	Get(ctx context.Context, id string) (string, error)          // Returns the username, or ErrNotFound
	Destroy(ctx context.Context, id string) error                // Revokes the session
}

// newSessionID returns a 128-bit random hex session ID
func newSessionID() (string, error) {
	b := make([]byte, 16) // 128 bits of randomness
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RedisStore keeps sessions in Redis with a TTL
type RedisStore struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Session lifetime
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// sessionKey builds the Redis key for a session ID
func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a new session and returns its ID
func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	id, err := newSessionID() // Generate a fresh session ID
	if err != nil {
		return "", err
	}
	// Store username under the session key with the configured TTL
	if err := s.rdb.Set(ctx, sessionKey(id), username, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get resolves a session ID to its username
func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	username, err := s.rdb.Get(ctx, sessionKey(id)).Result() // Look up the session
	if err == redis.Nil {
		return "", ErrNotFound // Expired, revoked, or never existed
	} else if err != nil {
		return "", err // Other Redis error
	}
	return username, nil
}

// Destroy revokes a session
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err() // Delete the session key
}

// memoryEntry is one live session in the memory store
type memoryEntry struct {
	username  string    // Authenticated principal
	expiresAt time.Time // Expiry deadline
}

// MemoryStore keeps sessions in process memory. Used in tests and single
// instance deployments without Redis; state is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex           // Guards sessions
	sessions map[string]memoryEntry // Live sessions by ID
	ttl      time.Duration          // Session lifetime
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry), ttl: ttl}
}

// Create stores a new session and returns its ID
func (s *MemoryStore) Create(ctx context.Context, username string) (string, error) {
	id, err := newSessionID() // Generate a fresh session ID
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[id] = memoryEntry{username: username, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

// Get resolves a session ID to its username
func (s *MemoryStore) Get(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	// Treat expired entries the same as missing ones
	if !ok || time.Now().After(entry.expiresAt) {
		return "", ErrNotFound
	}
	return entry.username, nil
}

// Destroy revokes a session
func (s *MemoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
