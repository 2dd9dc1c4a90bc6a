package app

import (
	"sync"
	"time"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

// typingTracker auto-clears stale typing indicators. The wire protocol has no
// expiry of its own; the TTL is a server-side option and 0 disables it.
type typingTracker struct {
	mu     sync.Mutex
	ttl    time.Duration
	timers map[typingKey]*time.Timer
	clear  func(core.ConnID, domain.ConversationID, domain.UserID)
}

type typingKey struct {
	conversationID domain.ConversationID
	userID         domain.UserID
}

func newTypingTracker(ttl time.Duration, clear func(core.ConnID, domain.ConversationID, domain.UserID)) *typingTracker {
	return &typingTracker{
		ttl:    ttl,
		timers: make(map[typingKey]*time.Timer),
		clear:  clear,
	}
}

// WithTypingTTL arms auto-clear on the gateway. A ttl <= 0 leaves the
// observed protocol behavior untouched.
func (g *Gateway) WithTypingTTL(ttl time.Duration) *Gateway {
	if ttl > 0 {
		g.typing = newTypingTracker(ttl, g.clearTyping)
	}
	return g
}

// Track restarts the expiry timer on a true indicator and disarms it on an
// explicit false.
func (t *typingTracker) Track(id core.ConnID, conversationID domain.ConversationID, userID domain.UserID, isTyping bool) {
	key := typingKey{conversationID: conversationID, userID: userID}
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[key]; ok {
		timer.Stop()
		delete(t.timers, key)
	}
	if !isTyping {
		return
	}
	t.timers[key] = time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		delete(t.timers, key)
		t.mu.Unlock()
		t.clear(id, conversationID, userID)
	})
}
