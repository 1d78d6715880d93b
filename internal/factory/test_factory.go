package factory

import (
	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/clock"
	"github.com/PriyankaYambem/cloud-manager/internal/storage/memory"
)

// NewForTest creates an application on in-memory storage with an injected
// clock, for tests that need to control time
func NewForTest(clk clock.Clock, cfg Config) *App {
	return newWithDependencies(memory.New(), clk, cfg)
}
