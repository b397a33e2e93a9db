// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"greycare_backend/internal/feature/diagnosislist/domain/entity"
	"greycare_backend/internal/feature/diagnosislist/usecase"
)

// CachingDiagnosisRepository decorates a DiagnosisRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The catalog changes only at migration
// time, so a single key with a TTL is enough.
type CachingDiagnosisRepository struct {
	inner usecase.DiagnosisRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.DiagnosisRepository = (*CachingDiagnosisRepository)(nil)

// NewCachingDiagnosisRepository decorates a DiagnosisRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If key is empty, it uses "diagnoses".
func NewCachingDiagnosisRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DiagnosisRepository, key string) *CachingDiagnosisRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if key == "" {
		key = "diagnoses"
	}
	return &CachingDiagnosisRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// List retrieves the catalog, checking cache first then falling back to the database.
func (c *CachingDiagnosisRepository) List(ctx context.Context) ([]entity.Diagnosis, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Diagnosis
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}
