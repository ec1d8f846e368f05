package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"topscreen-counter/internal/logger"
)

const DefaultTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type component struct {
	name string
	impl Shutdownable
}

// Manager tears registered components down once, in reverse
// registration order.
type Manager struct {
	components []component
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetTimeout bounds how long a single component may take.
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, impl: c})
}

// Listen runs Shutdown and then onSignal when SIGINT or SIGTERM arrives.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	m.mu.Lock()
	components := append([]component(nil), m.components...)
	timeout := m.timeout
	m.mu.Unlock()

	close(m.done)
	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.impl.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": c.name,
			})
		case <-time.After(timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
