package executor

import (
	"sync"

	"go.uber.org/zap"
)

// Pool is a FIFO task queue served by a fixed number of workers.
//
// The queue is unbounded so that tasks submitted from inside other tasks
// never deadlock the submitting worker.
type Pool struct {
	name   string
	logger *zap.Logger

	mu     sync.Mutex
	tasks  []func()
	closed bool
	signal chan struct{} // buffered, size 1

	wg sync.WaitGroup
}

// NewPool starts a pool with the given number of workers.
// A non-positive worker count is treated as one.
func NewPool(name string, workers int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pool{
		name:   name,
		logger: logger,
		tasks:  make([]func(), 0, 16),
		signal: make(chan struct{}, 1),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}

	return p
}

// Name returns the pool name used in logs.
func (p *Pool) Name() string {
	return p.name
}

// Execute enqueues a task. It returns false if the pool has been shut down.
func (p *Pool) Execute(task func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.Debug("Task rejected by closed pool", zap.String("pool", p.name))
		return false
	}

	p.tasks = append(p.tasks, task)
	p.notify()
	return true
}

// Len returns the number of queued tasks.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// Shutdown stops accepting tasks, runs what is already queued and waits for the workers.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.signal)
	p.mu.Unlock()

	p.wg.Wait()
}

// notify must be called with mu held.
func (p *Pool) notify() {
	if p.closed {
		return
	}
	select {
	case p.signal <- struct{}{}:
	default:
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		if task, ok := p.next(); ok {
			task()
			continue
		}

		p.mu.Lock()
		done := p.closed && len(p.tasks) == 0
		p.mu.Unlock()
		if done {
			return
		}

		<-p.signal
	}
}

func (p *Pool) next() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tasks) == 0 {
		return nil, false
	}

	task := p.tasks[0]
	p.tasks[0] = nil
	if len(p.tasks) == 1 {
		p.tasks = p.tasks[:0]
	} else {
		p.tasks = p.tasks[1:]
		// Wake another worker for the remainder.
		p.notify()
	}

	return task, true
}
