package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Cache кеш отчётов о доступности в Redis
type Cache struct {
	client RedisClient
	ttl    time.Duration
	prefix string
}

// NewCache создает кеш отчётов
func NewCache(client RedisClient, ttl time.Duration, prefix string) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

// NewRedisClient создает клиент Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrCache, addr, err)
	}

	return client, nil
}

// Key строит ключ отчёта: оффер, диапазон и применённая политика
func (c *Cache) Key(offerID int64, dateRange domain.DateRange, policy domain.CapacityPolicy) string {
	return fmt.Sprintf("%s:offer:%d:%s:%s:%s:%d:%d:%d",
		c.prefix,
		offerID,
		dateRange.From.Format(domain.DateFormat),
		dateRange.To.Format(domain.DateFormat),
		policy.Mode,
		policy.DefaultCapacity,
		policy.DayLimit,
		policy.HourLimit,
	)
}

// Get возвращает запись из кеша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrCache, key, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrDecode, key, err)
	}
	if entry.Report == nil {
		return nil, fmt.Errorf("%w: Get - %s: no report in entry", ErrDecode, key)
	}
	if entry.Report.AvailableDays == nil {
		entry.Report.AvailableDays = []domain.DayAvailability{}
	}

	return &entry, nil
}

// Set сохраняет запись с TTL кеша
func (c *Cache) Set(ctx context.Context, key string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %s: %v", ErrCache, key, err)
	}

	return nil
}
