package service

import (
	"container/heap"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"passion-match/internal/domain"
)

// AnalysisCache guarda analisis ya calculados. El analizador es puro, asi que
// un valor cacheado siempre coincide con uno recien calculado.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (domain.TraitAnalysis, bool, error)
	Set(ctx context.Context, key string, analysis domain.TraitAnalysis, ttl time.Duration) error
}

// AnalysisCacheKey deriva la clave a partir del par (transcript, nicho).
// El nicho va prefijado con su largo para que ningun par distinto colisione.
func AnalysisCacheKey(transcript, niche string) string {
	sum := sha256.Sum256([]byte(strconv.Itoa(len(niche)) + ":" + niche + transcript))
	return hex.EncodeToString(sum[:])
}

const defaultMemoryCacheEntries = 10000

type memoryEntry struct {
	analysis  domain.TraitAnalysis
	expiresAt time.Time
}

// expiryItem ordena las claves por vencimiento. Puede quedar desactualizado si la
// clave se reescribe; se descarta al salir del heap si no coincide con el mapa.
type expiryItem struct {
	key       string
	expiresAt time.Time
}

type expiryHeap []expiryItem

func (h expiryHeap) Len() int           { return len(h) }
func (h expiryHeap) Less(i, j int) bool { return h[i].expiresAt.Before(h[j].expiresAt) }
func (h expiryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x any)        { *h = append(*h, x.(expiryItem)) }
func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type memoryAnalysisCache struct {
	mu         sync.Mutex
	items      map[string]memoryEntry
	expiries   expiryHeap
	maxEntries int
}

// NewMemoryAnalysisCache crea un cache en memoria con vencimiento y tope de claves.
func NewMemoryAnalysisCache() AnalysisCache {
	return newMemoryAnalysisCache(defaultMemoryCacheEntries)
}

func newMemoryAnalysisCache(maxEntries int) *memoryAnalysisCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheEntries
	}
	return &memoryAnalysisCache{
		items:      make(map[string]memoryEntry),
		maxEntries: maxEntries,
	}
}

func (c *memoryAnalysisCache) Get(_ context.Context, key string) (domain.TraitAnalysis, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return domain.TraitAnalysis{}, false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, key)
		return domain.TraitAnalysis{}, false, nil
	}
	return entry.analysis, true, nil
}

func (c *memoryAnalysisCache) Set(_ context.Context, key string, analysis domain.TraitAnalysis, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" || ttl <= 0 {
		return nil
	}

	now := time.Now().UTC()
	c.evictExpired(now)
	for len(c.items) >= c.maxEntries && c.expiries.Len() > 0 {
		if _, exists := c.items[key]; exists {
			break
		}
		c.popLive()
	}

	expiresAt := now.Add(ttl)
	c.items[key] = memoryEntry{analysis: analysis, expiresAt: expiresAt}
	heap.Push(&c.expiries, expiryItem{key: key, expiresAt: expiresAt})
	return nil
}

// evictExpired saca del heap todo lo vencido. Se llama con el lock tomado.
func (c *memoryAnalysisCache) evictExpired(now time.Time) {
	for c.expiries.Len() > 0 && now.After(c.expiries[0].expiresAt) {
		c.popLive()
	}
}

// popLive saca el proximo vencimiento y borra la clave si el item sigue vigente.
func (c *memoryAnalysisCache) popLive() {
	item := heap.Pop(&c.expiries).(expiryItem)
	if entry, ok := c.items[item.key]; ok && entry.expiresAt.Equal(item.expiresAt) {
		delete(c.items, item.key)
	}
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisAnalysisCache struct {
	client redisKVClient
	prefix string
}

func NewRedisAnalysisCache(client *redis.Client) AnalysisCache {
	if client == nil {
		return nil
	}
	return &redisAnalysisCache{
		client: client,
		prefix: "analysis:",
	}
}

func (c *redisAnalysisCache) Get(ctx context.Context, key string) (domain.TraitAnalysis, bool, error) {
	if key == "" {
		return domain.TraitAnalysis{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TraitAnalysis{}, false, nil
	}
	if err != nil {
		return domain.TraitAnalysis{}, false, err
	}

	var analysis domain.TraitAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return domain.TraitAnalysis{}, false, err
	}
	return analysis, true, nil
}

func (c *redisAnalysisCache) Set(ctx context.Context, key string, analysis domain.TraitAnalysis, ttl time.Duration) error {
	if key == "" || ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, payload, ttl).Err()
}
