package slack

import (
	"fmt"
	"time"

	"github.com/slacktime-io/slack-client/internal/constants"
)

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// CacheConfig configures the response cache backend and scope.
type CacheConfig struct {
	// Type is the cache backend type.
	Type CacheType

	// Memory cache configuration.
	Memory *MemoryCacheConfig

	// NATS KV cache configuration.
	NATS *NATSKVConfig

	// TTL applied to stored responses. Zero means the default of 5 minutes.
	TTL time.Duration

	// Methods lists the dot-paths (camelCase) whose responses may be cached.
	// Empty means DefaultCacheableMethods().
	Methods []string
}

// MemoryCacheConfig configures memory cache.
type MemoryCacheConfig struct {
	// MaxSize is the maximum number of items in the cache.
	MaxSize int
}

// DefaultCacheableMethods returns the read-only methods cached by default.
// Anything that mutates workspace state must never appear here.
func DefaultCacheableMethods() []string {
	return []string{"emoji.list", "team.info", "users.info"}
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
		Memory: &MemoryCacheConfig{
			MaxSize: constants.DefaultCacheSize,
		},
		TTL:     constants.DefaultCacheTTL,
		Methods: DefaultCacheableMethods(),
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		maxSize := constants.DefaultCacheSize
		if config.Memory != nil {
			maxSize = config.Memory.MaxSize
		}

		return NewMemoryCache(maxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigMissing
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCache, config.Type)
	}
}

// CacheBuilder helps build cache configurations.
type CacheBuilder struct {
	config *CacheConfig
}

// NewCacheBuilder creates a new cache builder.
func NewCacheBuilder() *CacheBuilder {
	return &CacheBuilder{
		config: &CacheConfig{
			Type:    CacheTypeMemory,
			TTL:     constants.DefaultCacheTTL,
			Methods: DefaultCacheableMethods(),
		},
	}
}

// WithType sets the cache type.
func (b *CacheBuilder) WithType(cacheType CacheType) *CacheBuilder {
	b.config.Type = cacheType

	return b
}

// WithMemoryConfig sets memory cache configuration.
func (b *CacheBuilder) WithMemoryConfig(maxSize int) *CacheBuilder {
	b.config.Memory = &MemoryCacheConfig{MaxSize: maxSize}

	return b
}

// WithNATSConfig sets NATS cache configuration.
func (b *CacheBuilder) WithNATSConfig(config *NATSKVConfig) *CacheBuilder {
	b.config.NATS = config

	return b
}

// WithTTL sets the response TTL.
func (b *CacheBuilder) WithTTL(ttl time.Duration) *CacheBuilder {
	b.config.TTL = ttl

	return b
}

// WithMethods sets the cacheable method list.
func (b *CacheBuilder) WithMethods(methods ...string) *CacheBuilder {
	b.config.Methods = methods

	return b
}

// Config returns the built configuration.
func (b *CacheBuilder) Config() *CacheConfig {
	return b.config
}

// Build creates the cache from the configuration.
func (b *CacheBuilder) Build() (Cache, error) {
	return NewCacheFromConfig(b.config)
}
