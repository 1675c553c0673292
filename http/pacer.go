package http

import (
	"context"
	"sync"
	"time"
)

// domainPacer spaces requests to the same domain at least minDelay apart.
// The timestamp is stamped only on successful responses, so failed attempts
// do not push back the next allowed request. Concurrent requests to
// different domains never wait on each other.
type domainPacer struct {
	mu       sync.Mutex
	last     map[string]time.Time
	minDelay time.Duration
}

func newDomainPacer(minDelay time.Duration) *domainPacer {
	return &domainPacer{
		last:     make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until at least minDelay has elapsed since the last successful
// request to the domain. Returns an error only if the context is canceled.
func (p *domainPacer) Wait(ctx context.Context, domain string) error {
	p.mu.Lock()
	last, ok := p.last[domain]
	p.mu.Unlock()

	if !ok {
		return nil
	}

	remaining := p.minDelay - time.Since(last)
	if remaining <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(remaining):
		return nil
	}
}

// Record stamps the domain's last successful request time.
func (p *domainPacer) Record(domain string) {
	p.mu.Lock()
	p.last[domain] = time.Now()
	p.mu.Unlock()
}
