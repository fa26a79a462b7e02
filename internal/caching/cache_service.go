package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rnbridge/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a best-effort read-through cache for the university
// directory. Every error is a miss; the database stays authoritative.
type CacheService interface {
	GetUniversityList(ctx context.Context, key string) ([]*models.University, error)
	SetUniversityList(ctx context.Context, key string, universities []*models.University, ttl time.Duration) error
	GetUniversity(ctx context.Context, id int64) (*models.University, error)
	SetUniversity(ctx context.Context, university *models.University, ttl time.Duration) error
	InvalidateUniversities(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func listKey(key string) string {
	return "universities:list:" + key
}

func itemKey(id int64) string {
	return fmt.Sprintf("universities:item:%d", id)
}

func (s *redisCacheService) GetUniversityList(ctx context.Context, key string) ([]*models.University, error) {
	data, err := s.client.Get(ctx, listKey(key)).Bytes()
	if err != nil {
		return nil, err
	}

	var universities []*models.University
	if err := json.Unmarshal(data, &universities); err != nil {
		return nil, err
	}
	return universities, nil
}

func (s *redisCacheService) SetUniversityList(ctx context.Context, key string, universities []*models.University, ttl time.Duration) error {
	data, err := json.Marshal(universities)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, listKey(key), data, ttl).Err()
}

func (s *redisCacheService) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	data, err := s.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		return nil, err
	}

	university := &models.University{}
	if err := json.Unmarshal(data, university); err != nil {
		return nil, err
	}
	return university, nil
}

func (s *redisCacheService) SetUniversity(ctx context.Context, university *models.University, ttl time.Duration) error {
	data, err := json.Marshal(university)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, itemKey(university.ID), data, ttl).Err()
}

// InvalidateUniversities drops every directory key after a write.
func (s *redisCacheService) InvalidateUniversities(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, "universities:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
