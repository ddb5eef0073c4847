package cache

import (
	"payanam.app/config"
	"payanam.app/errors"
)

// NewCacheFromConfig builds the cache backend selected by configuration
func NewCacheFromConfig(cfg *config.CacheConfig) (GenericCacheInterface, error) {
	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCache(), nil
	case config.CacheTypeRedis:
		cache, err := NewRedisCache(&cfg.Redis)
		if err != nil {
			return nil, errors.NewCacheError("failed to connect to redis", err)
		}
		return cache, nil
	default:
		return nil, errors.NewConfigurationError("unknown cache type", nil)
	}
}
