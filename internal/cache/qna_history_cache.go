package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"docvault/internal/model"
)

// QnAHistoryCache keeps a short-TTL copy of a (user, document) QnA history.
// A dirty marker set on every ask suppresses repopulation until in-flight
// writes have landed, the same protocol the rest of the cache keys follow.
type QnAHistoryCache struct {
	client         *redisv9.Client
	historyTTL     time.Duration
	dirtyMarkerTTL time.Duration
}

func NewQnAHistoryCache(client *redisv9.Client, historyTTL, dirtyMarkerTTL time.Duration) *QnAHistoryCache {
	if historyTTL <= 0 {
		historyTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &QnAHistoryCache{
		client:         client,
		historyTTL:     historyTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *QnAHistoryCache) GetHistory(ctx context.Context, userID, documentID uint) ([]model.QnARecord, bool, error) {
	raw, err := c.client.Get(ctx, c.historyKey(userID, documentID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get qna history failed: %w", err)
	}

	var records []model.QnARecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached qna history failed: %w", err)
	}
	return records, true, nil
}

func (c *QnAHistoryCache) SetHistory(ctx context.Context, userID, documentID uint, records []model.QnARecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal qna history failed: %w", err)
	}
	if err := c.client.Set(ctx, c.historyKey(userID, documentID), payload, c.historyTTL).Err(); err != nil {
		return fmt.Errorf("redis set qna history failed: %w", err)
	}
	return nil
}

func (c *QnAHistoryCache) DeleteHistory(ctx context.Context, userID, documentID uint) error {
	if err := c.client.Del(ctx, c.historyKey(userID, documentID)).Err(); err != nil {
		return fmt.Errorf("redis delete qna history failed: %w", err)
	}
	return nil
}

func (c *QnAHistoryCache) MarkDirty(ctx context.Context, userID, documentID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID, documentID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *QnAHistoryCache) IsDirty(ctx context.Context, userID, documentID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID, documentID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *QnAHistoryCache) historyKey(userID, documentID uint) string {
	return fmt.Sprintf("qna:history:%d:%d", userID, documentID)
}

func (c *QnAHistoryCache) dirtyKey(userID, documentID uint) string {
	return fmt.Sprintf("qna:history:dirty:%d:%d", userID, documentID)
}
