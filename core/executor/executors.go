package executor

import "go.uber.org/zap"

// Executors bundles the three scheduling domains.
type Executors struct {
	Main      *Pool
	DiskIO    *Pool
	NetworkIO *Pool
}

// New creates the main, disk and network pools.
func New(cfg Config, logger *zap.Logger) *Executors {
	if logger == nil {
		logger = zap.NewNop()
	}
	network := cfg.NetworkWorkers
	if network <= 0 {
		network = 2
	}

	return &Executors{
		Main:      NewPool("main", 1, logger),
		DiskIO:    NewPool("disk-io", 1, logger),
		NetworkIO: NewPool("network-io", network, logger),
	}
}

// Shutdown drains the pools. Network first, since its tasks feed the others.
func (e *Executors) Shutdown() {
	e.NetworkIO.Shutdown()
	e.DiskIO.Shutdown()
	e.Main.Shutdown()
}
