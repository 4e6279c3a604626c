// Package ratelimit throttles expensive endpoints with per-client token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting settings.
type Config struct {
	Enabled         bool
	UploadsPerMin   int           // Token refill per minute for upload endpoints
	Burst           int           // Bucket capacity
	CleanupInterval time.Duration // How often idle buckets are dropped
}

// LoadConfig reads limiter settings from the environment.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         true,
		UploadsPerMin:   30,
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
	if raw := os.Getenv("RATE_LIMIT_ENABLED"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			cfg.Enabled = b
		}
	}
	if raw := os.Getenv("RATE_LIMIT_UPLOADS_PER_MIN"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.UploadsPerMin = n
		}
	}
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = LoadConfig()
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.ticker = time.NewTicker(cfg.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may run another upload right now.
func (l *Limiter) Allow(clientID string) bool {
	if !l.cfg.Enabled {
		return true
	}

	now := time.Now()
	refillRate := float64(l.cfg.UploadsPerMin) / 60.0

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.cfg.Burst), b.tokens+elapsed*refillRate)
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// RetryAfter estimates how long the client must wait for the next token.
func (l *Limiter) RetryAfter(clientID string) time.Duration {
	if !l.cfg.Enabled {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok || b.tokens >= 1.0 {
		return 0
	}
	refillRate := float64(l.cfg.UploadsPerMin) / 60.0
	needed := 1.0 - b.tokens
	return time.Duration(needed / refillRate * float64(time.Second))
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle()
		case <-l.stop:
			return
		}
	}
}

// dropIdle removes buckets untouched for over an hour.
func (l *Limiter) dropIdle() {
	cutoff := time.Now().Add(-time.Hour)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup loop.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
