package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"fitplan/internal/domain"
)

// PlanCache memoiza planes generados. La clave incluye la fecha y la versión
// del perfil, así un cambio de atributos invalida sin borrado explícito.
type PlanCache interface {
	Get(ctx context.Context, key string) (domain.EnrichedDailyPlan, bool, error)
	Set(ctx context.Context, key string, plan domain.EnrichedDailyPlan, ttl time.Duration) error
}

type memoryPlanCache struct {
	mu    sync.Mutex
	items map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	plan      domain.EnrichedDailyPlan
	expiresAt time.Time
}

// NewMemoryPlanCache es el fallback cuando Redis no está configurado.
func NewMemoryPlanCache() PlanCache {
	return &memoryPlanCache{items: make(map[string]memoryCacheEntry)}
}

func (c *memoryPlanCache) Get(_ context.Context, key string) (domain.EnrichedDailyPlan, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return domain.EnrichedDailyPlan{}, false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, key)
		return domain.EnrichedDailyPlan{}, false, nil
	}
	return entry.plan, true, nil
}

func (c *memoryPlanCache) Set(_ context.Context, key string, plan domain.EnrichedDailyPlan, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memoryCacheEntry{plan: plan, expiresAt: time.Now().UTC().Add(ttl)}
	return nil
}

type redisPlanCache struct {
	client *redis.Client
	prefix string
}

// NewRedisPlanCache guarda los planes serializados en JSON con TTL.
func NewRedisPlanCache(client *redis.Client) PlanCache {
	if client == nil {
		return nil
	}
	return &redisPlanCache{client: client, prefix: "plan:"}
}

func (c *redisPlanCache) Get(ctx context.Context, key string) (domain.EnrichedDailyPlan, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return domain.EnrichedDailyPlan{}, false, nil
	}
	if err != nil {
		return domain.EnrichedDailyPlan{}, false, err
	}
	var plan domain.EnrichedDailyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return domain.EnrichedDailyPlan{}, false, err
	}
	return plan, true, nil
}

func (c *redisPlanCache) Set(ctx context.Context, key string, plan domain.EnrichedDailyPlan, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, raw, ttl).Err()
}
