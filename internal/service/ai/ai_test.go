// Package ai 提供回复编排器单元测试
package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

// fakeProvider 可编程的提供商
type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
	lastMsgs []*schema.Message
}

func (p *fakeProvider) Name() string {
	return p.name
}

func (p *fakeProvider) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	p.calls++
	p.lastMsgs = messages
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func TestReplyPrimarySuccess(t *testing.T) {
	primary := &fakeProvider{name: "openai", response: "Certainly, I can help with that."}
	secondary := &fakeProvider{name: "gemini", response: "should never be used"}
	svc := NewService([]Provider{primary, secondary})

	got := svc.Reply(context.Background(), "Can I rebook?", nil, "user-1")

	if got != "Certainly, I can help with that." {
		t.Errorf("expected primary response verbatim, got %q", got)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary provider should not be invoked, got %d calls", secondary.calls)
	}
}

func TestReplyFallsBackToSecondary(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("quota exceeded")}
	secondary := &fakeProvider{name: "gemini", response: "Of course."}
	svc := NewService([]Provider{primary, secondary})

	got := svc.Reply(context.Background(), "hello", nil, "")

	if got != "Of course." {
		t.Errorf("expected secondary response, got %q", got)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be tried exactly once, got %d calls", primary.calls)
	}
}

func TestReplyAllProvidersFail(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("network down")}
	secondary := &fakeProvider{name: "gemini", err: errors.New("also down")}
	svc := NewService([]Provider{primary, secondary})

	canned := make(map[string]bool)
	for _, response := range FallbackResponses() {
		canned[response] = true
	}

	for i := 0; i < 10; i++ {
		got := svc.Reply(context.Background(), "hello", nil, "")
		if got == "" {
			t.Fatal("reply must never be empty")
		}
		if !canned[got] {
			t.Fatalf("expected a canned response, got %q", got)
		}
	}
}

func TestReplyNoProviders(t *testing.T) {
	svc := NewService(nil)

	got := svc.Reply(context.Background(), "hello", nil, "")
	if got == "" {
		t.Fatal("reply must never be empty")
	}
}

func TestReplyBuildsConversation(t *testing.T) {
	primary := &fakeProvider{name: "openai", response: "ok"}
	svc := NewService([]Provider{primary})

	history := []model.ConversationTurn{
		{Role: "user", Content: "I need to cancel"},
		{Role: "assistant", Content: "Which booking?"},
	}
	svc.Reply(context.Background(), "The one on Friday", history, "user-1")

	msgs := primary.lastMsgs
	if len(msgs) != 4 {
		t.Fatalf("expected system + 2 history + current = 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != schema.System {
		t.Errorf("first message should be the system prompt, got role %s", msgs[0].Role)
	}
	if msgs[1].Role != schema.User || msgs[1].Content != "I need to cancel" {
		t.Errorf("unexpected first history message: %+v", msgs[1])
	}
	if msgs[2].Role != schema.Assistant {
		t.Errorf("assistant turn should map to assistant role, got %s", msgs[2].Role)
	}
	if msgs[3].Role != schema.User || msgs[3].Content != "The one on Friday" {
		t.Errorf("unexpected current message: %+v", msgs[3])
	}
}
