//go:build !windows

package gui

import (
	"topscreen-counter/internal/logger"

	"go.uber.org/atomic"
)

// Docking needs the Windows shell; elsewhere the strip is a plain window.
type appBar struct {
	registered *atomic.Bool
	logger     logger.Logger
}

func newAppBar(log logger.Logger) *appBar {
	return &appBar{registered: atomic.NewBool(false), logger: log}
}

func screenWidth() int {
	return 0
}

func (a *appBar) register(native any, width, height int) error {
	a.logger.Debug("DockedWindow", "docking unsupported on this platform", map[string]interface{}{
		"width":  width,
		"height": height,
	})
	return nil
}

func (a *appBar) remove() error {
	a.registered.Store(false)
	return nil
}
