package session

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

const (
	// 会话上下文在 Redis 中的过期时间（24小时）
	contextTTL = 24 * time.Hour
	// Redis key 前缀
	contextKeyPrefix = "chat:context:"
	// 每个 report 最多保留的轮次（user + assistant 各算一条）
	maxTurns = 20
)

// Cache 按 report_id 缓存最近会话轮次
// 客户端不带 conversation_history 时作为历史来源；缓存故障降级为空历史
type Cache struct {
	redis *redis.Client
}

// NewCache 创建会话上下文缓存
func NewCache(redisClient *redis.Client) *Cache {
	return &Cache{redis: redisClient}
}

// History 读取缓存的最近轮次
func (c *Cache) History(ctx context.Context, reportID string) []model.ConversationTurn {
	if c.redis == nil {
		return nil
	}

	data, err := c.redis.Get(ctx, contextKeyPrefix+reportID).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("[session] failed to load context for %s: %v", reportID, err)
		return nil
	}

	var turns []model.ConversationTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		log.Printf("[session] corrupt context for %s: %v", reportID, err)
		return nil
	}
	return turns
}

// AppendTurn 追加一次用户/AI 交换并刷新过期时间
func (c *Cache) AppendTurn(ctx context.Context, reportID, userMessage, aiResponse string) {
	if c.redis == nil {
		return
	}

	turns := c.History(ctx, reportID)
	turns = append(turns,
		model.ConversationTurn{Role: "user", Content: userMessage},
		model.ConversationTurn{Role: "assistant", Content: aiResponse},
	)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	data, err := json.Marshal(turns)
	if err != nil {
		log.Printf("[session] failed to marshal context for %s: %v", reportID, err)
		return
	}

	if err := c.redis.Set(ctx, contextKeyPrefix+reportID, data, contextTTL).Err(); err != nil {
		log.Printf("[session] failed to save context for %s: %v", reportID, err)
	}
}
