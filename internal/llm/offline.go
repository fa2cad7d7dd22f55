package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// offlineReplies rotate through a handful of canned coaching messages.
// They carry the same lightweight markup a live coach produces so the
// renderer gets exercised even without an API key.
var offlineReplies = []string{
	"## Quick Start\nGood to see you. Let's keep it simple today.\n- **5 min** easy warmup\n- **3 sets** of squats, *slow on the way down*\n- **3 sets** of push-ups\n\nTell me how that felt when you're done.",
	"Nice work showing up. Recovery matters as much as effort.\n### Cooldown\n1. Walk it off for **2 minutes**\n2. Stretch hamstrings, *hold 30 seconds each side*\n3. Shoulders and chest last\n\nHydrate before you close the app.",
	"## Core Day\nShort and sharp:\n- **30s** plank\n- **15** dead bugs\n- **30s** side plank each side\n\nRepeat the circuit *twice*. Quality over speed.",
	"Listen to your body today. If you're sore, go for a **20 minute** walk instead and call it active recovery. Consistency beats intensity, *every single week*.",
	"### Progress Check\nYou've been putting in the reps. This week, add **one extra set** to your main lift and keep the rest the same. Small steps stack up.",
}

// OfflineProvider serves canned coaching replies so the app stays fully
// usable without any API key configured. Replies rotate in order and
// are deterministic for a given call sequence.
type OfflineProvider struct {
	mu    sync.Mutex
	calls int
}

// NewOfflineProvider creates the keyless fallback provider.
func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (p *OfflineProvider) Generate(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	reply := offlineReplies[p.calls%len(offlineReplies)]
	p.calls++
	p.mu.Unlock()

	var content json.RawMessage
	if req.Schema != nil {
		b, err := json.Marshal(map[string]string{"reply": reply})
		if err != nil {
			return nil, fmt.Errorf("marshal offline reply: %w", err)
		}
		content = b
	} else {
		b, err := json.Marshal(reply)
		if err != nil {
			return nil, fmt.Errorf("marshal offline reply: %w", err)
		}
		content = b
	}

	// Rough size-based estimate keeps the usage stats plausible.
	out := len(reply) / 4
	return &Response{
		Content:    content,
		Usage:      Usage{InputTokens: 0, OutputTokens: out, TotalTokens: out},
		Model:      "offline-coach",
		StopReason: "end",
	}, nil
}

// ModelID returns "offline-coach".
func (p *OfflineProvider) ModelID() string {
	return "offline-coach"
}
