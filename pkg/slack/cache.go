package slack

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/slacktime-io/slack-client/internal/constants"
)

// Cache stores decoded response bodies for read-only Web API methods. The
// client only consults it for methods listed in CacheConfig.Methods, so stale
// reads are opt-in and scoped.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is one stored response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry's TTL has passed.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// CacheKey derives a stable key from a method path and its arguments. File
// arguments never reach here; cacheable methods are read-only.
func CacheKey(method string, args Args) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(method))

	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%v", k, args[k])
	}

	return method + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// MemoryCache is an in-process Cache with a max entry count. Expired entries
// are dropped lazily on Get and evicted oldest-first when full.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	order   []string
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry, dropping it when expired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the oldest key when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Data) > constants.MaxCacheValueSize {
		return ErrCacheEntryTooBig
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.order = append(c.order, key)
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. nats.DefaultURL.
	URL string

	// Bucket is the KV bucket name. Created when missing.
	Bucket string

	// TTL is applied to the bucket when it has to be created.
	TTL time.Duration

	// Credentials optionally points at a NATS credentials file.
	Credentials string
}

// NATSKVCache is a Cache backed by a NATS JetStream key-value bucket, for
// sharing cached read-only responses across processes.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSKVCache connects to NATS and binds (or creates) the configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigMissing
	}

	opts := []nats.Option{}
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if err != nil {
		ttl := config.TTL
		if ttl == 0 {
			ttl = constants.DefaultCacheTTL
		}

		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    ttl,
		})
		if err != nil {
			conn.Close()

			return nil, fmt.Errorf("creating KV bucket %q: %w", config.Bucket, err)
		}
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Get retrieves an entry from the bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kve, err := c.kv.Get(sanitizeKVKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	var entry CacheEntry

	err = json.Unmarshal(kve.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Data) > constants.MaxCacheValueSize {
		return ErrCacheEntryTooBig
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(sanitizeKVKey(key), data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(sanitizeKVKey(key))
	if err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		// An empty bucket reports no keys as an error; nothing to clear.
		return nil
	}

	for _, key := range keys {
		_ = c.kv.Delete(key)
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

// NATS KV keys may not contain certain separators; the method path uses dots
// which are subject-token separators, so swap the delimiter.
func sanitizeKVKey(key string) string {
	out := make([]byte, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case ':', ' ':
			out[i] = '_'
		default:
			out[i] = key[i]
		}
	}

	return string(out)
}

// NoOpCache is a cache that does nothing (no caching).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always reports a miss.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
