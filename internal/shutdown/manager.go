// Package shutdown runs cleanup steps once, in reverse registration order,
// when the app quits or the process is signalled.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"image-converter/internal/logger"
)

const DefaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type step struct {
	name string
	s    Shutdownable
}

type Manager struct {
	logger      logger.Logger
	stepTimeout time.Duration

	mu    sync.Mutex
	steps []step
	once  sync.Once
	done  chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
	}
}

// SetStepTimeout bounds how long a single step may block the sequence.
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	m.stepTimeout = d
	m.mu.Unlock()
}

// Register adds a named step. Steps run last-registered first.
func (m *Manager) Register(name string, s Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, s: s})
}

// Listen runs Shutdown on SIGINT or SIGTERM. It stops listening when ctx
// ends or Shutdown has already run.
func (m *Manager) Listen(ctx context.Context) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer stop()

		select {
		case <-sigCtx.Done():
			if ctx.Err() != nil {
				return
			}
			m.logger.Info("Shutdown", "signal received", nil)
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown runs every step once. Concurrent and repeated calls return after
// the first sequence finishes.
func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	defer close(m.done)

	m.mu.Lock()
	steps := append([]step(nil), m.steps...)
	timeout := m.stepTimeout
	m.mu.Unlock()

	start := time.Now()
	for i := len(steps) - 1; i >= 0; i-- {
		st := steps[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			st.s.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("Shutdown", "step finished", map[string]interface{}{
				"step": st.name,
			})
		case <-time.After(timeout):
			m.logger.Warning("Shutdown", "step timed out", map[string]interface{}{
				"step":       st.name,
				"timeout_ms": timeout.Milliseconds(),
			})
		}
	}

	m.logger.Info("Shutdown", "complete", map[string]interface{}{
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// Done is closed once the shutdown sequence has finished.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
