package session

import (
	"context"
	"testing"
)

func TestHistoryWithoutRedis(t *testing.T) {
	cache := NewCache(nil)

	if turns := cache.History(context.Background(), "report-1"); turns != nil {
		t.Errorf("expected nil history without redis, got %v", turns)
	}
}

func TestAppendTurnWithoutRedis(t *testing.T) {
	cache := NewCache(nil)

	// 缓存缺失时追加是安静的空操作
	cache.AppendTurn(context.Background(), "report-1", "hello", "hi")

	if turns := cache.History(context.Background(), "report-1"); turns != nil {
		t.Errorf("expected nil history without redis, got %v", turns)
	}
}
