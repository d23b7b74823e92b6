package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other client should have its own bucket")
	}
	if n := rl.limiters.ItemCount(); n != 2 {
		t.Errorf("limiters = %d, want 2", n)
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)

	for i := 0; i < 5; i++ {
		rl.Allow(string(rune('a' + i)))
	}
	if n := rl.limiters.ItemCount(); n != 5 {
		t.Fatalf("limiters = %d, want 5", n)
	}

	time.Sleep(120 * time.Millisecond)
	rl.limiters.DeleteExpired()
	if n := rl.limiters.ItemCount(); n != 0 {
		t.Errorf("limiters after idle window = %d, want 0", n)
	}
	if !rl.Allow("a") {
		t.Error("evicted client should start with a full bucket")
	}
}
