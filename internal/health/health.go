package health

import (
	"context"
	"sync"
	"time"

	"github.com/DMarby/unsplash-tool/internal/logger"
)

// DefaultInterval is how often the provider is checked unless configured otherwise
const DefaultInterval = 30 * time.Second

const checkTimeout = 8 * time.Second

// Pinger is something that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker is a periodic health checker
type Checker struct {
	Ctx      context.Context
	Provider Pinger
	Interval time.Duration
	Log      *logger.Logger

	status Status
	mutex  sync.RWMutex
}

// Status contains the healthcheck status
type Status struct {
	Healthy  bool   `json:"healthy"`
	Provider string `json:"provider,omitempty"`
}

// Run performs an initial check and then keeps checking in the background until the context is done
func (c *Checker) Run() {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				c.runCheck()
			case <-c.Ctx.Done():
				ticker.Stop()
				return
			}
		}
	}()

	c.runCheck()
}

// Status returns the status of the health checks
func (c *Checker) Status() Status {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.status
}

func (c *Checker) runCheck() {
	ctx, cancel := context.WithTimeout(c.Ctx, checkTimeout)
	defer cancel()

	channel := make(chan Status, 1)
	go func() {
		c.check(ctx, channel)
	}()

	select {
	case <-ctx.Done():
		c.setStatus(Status{
			Healthy:  false,
			Provider: "unknown",
		})
		c.Log.Errorw("healthcheck timed out")
	case status, ok := <-channel:
		if !ok {
			return
		}

		c.setStatus(status)
		if !status.Healthy {
			c.Log.Errorw("healthcheck error",
				"status", status,
			)
		}
	}
}

func (c *Checker) setStatus(status Status) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.status = status
}

func (c *Checker) check(ctx context.Context, channel chan Status) {
	defer close(channel)

	if ctx.Err() != nil {
		return
	}

	status := Status{
		Healthy: true,
	}

	if c.Provider != nil {
		if err := c.Provider.Ping(ctx); err != nil {
			c.Log.Debugw("provider ping failed", "error", err)
			status.Healthy = false
			status.Provider = "unhealthy"
		} else {
			status.Provider = "healthy"
		}
	}

	if ctx.Err() != nil {
		return
	}

	channel <- status
}
