package chat

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/liorae/liora/internal/observability"
)

// buildState tracks the client cache lifecycle. The transition out of
// stateUnbuilt happens exactly once per process; both terminal states are
// permanent until restart (or an explicit Reset).
type buildState int

const (
	stateUnbuilt buildState = iota
	stateReady
	stateUnavailable
)

// BuildFunc constructs a Completer from the assistant config and the
// resolved credential.
type BuildFunc func(cfg Config, apiKey string) (Completer, error)

// ClientCache is the process-wide holder for the completion client. The
// client is built lazily on the first request that needs it; a missing
// credential or a failed construction pins the cache to unavailable so the
// per-request path never repeats an expensive failing build.
type ClientCache struct {
	mu     sync.Mutex
	state  buildState
	client Completer
	cfg    Config
	build  BuildFunc
}

// NewClientCache creates an unbuilt client cache.
func NewClientCache(cfg Config, build BuildFunc) *ClientCache {
	return &ClientCache{
		cfg:   cfg,
		build: build,
	}
}

// Get returns the cached completion client, building it on first call.
// A nil return means the client is unavailable for the rest of the process
// lifetime; no error is ever surfaced to the caller.
func (c *ClientCache) Get(ctx context.Context) Completer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateUnbuilt {
		return c.client
	}

	logger := observability.FromContext(ctx)

	key := ResolveCredential(c.cfg)
	if key == "" {
		logger.Warn("completion API key not found (settings and environment both empty)")
		c.state = stateUnavailable
		return nil
	}

	client, err := c.build(c.cfg, key)
	if err != nil {
		logger.Error("failed to create completion client", zap.Error(err))
		c.state = stateUnavailable
		return nil
	}

	c.state = stateReady
	c.client = client
	logger.Info("completion client initialized", zap.String("key", MaskKey(key)))
	return client
}

// Initialized reports whether a client has been built, without triggering
// construction.
func (c *ClientCache) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateReady
}

// Reset returns the cache to its unbuilt state so the next Get re-attempts
// construction. Intended for operators who fixed a missing credential at
// runtime; exposed over HTTP only when debug mode is on.
func (c *ClientCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = stateUnbuilt
	c.client = nil
}

// SDKAvailable reports whether the completion SDK is present in this
// runtime. The SDK is linked at compile time, so this is a constant
// capability check kept for health-probe contract parity.
func SDKAvailable() bool {
	return true
}
