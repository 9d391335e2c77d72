package engine

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// PoolConfig sizes a worker Pool.
type PoolConfig struct {
	// MinWorkers are started up front and never retire.
	MinWorkers int

	// MaxWorkers caps concurrency. Extra workers are only started when the
	// queue is full.
	MaxWorkers int

	// QueueSize bounds the number of submitted tasks waiting for a worker.
	QueueSize int

	// IdleTimeout retires a worker above MinWorkers after this long
	// without a task.
	IdleTimeout time.Duration
}

// DefaultPoolConfig mirrors the sizing the ingestion engine has always used:
// 10 core workers, up to 40, a queue of 1024 and a one minute keep-alive.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MinWorkers:  10,
		MaxWorkers:  40,
		QueueSize:   1024,
		IdleTimeout: time.Minute,
	}
}

func (c PoolConfig) normalized() PoolConfig {
	if c.MinWorkers < 1 {
		c.MinWorkers = 1
	}
	if c.MaxWorkers < c.MinWorkers {
		c.MaxWorkers = c.MinWorkers
	}
	if c.QueueSize < 1 {
		c.QueueSize = 1
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = time.Minute
	}
	return c
}

// Pool runs submitted tasks on a bounded set of goroutines fed by a bounded
// queue.
//
// Growth policy: MinWorkers start immediately. When Submit finds the queue
// full it starts another worker (up to MaxWorkers) that runs the task
// directly. With the queue full and MaxWorkers busy, Submit blocks until a
// slot frees up; work is never dropped.
//
// A Pool is driven by a single dispatcher goroutine: Submit and Close must
// not be called concurrently, and Submit must not be called after Close.
type Pool struct {
	cfg   PoolConfig
	tasks chan func()
	group errgroup.Group

	mu      sync.Mutex
	workers int
	peak    int
	closed  bool
}

// NewPool starts MinWorkers workers and returns the pool.
func NewPool(cfg PoolConfig) *Pool {
	cfg = cfg.normalized()
	p := &Pool{
		cfg:   cfg,
		tasks: make(chan func(), cfg.QueueSize),
	}
	for range cfg.MinWorkers {
		p.trySpawn(nil)
	}
	return p
}

// Submit queues task for execution, blocking while the pool is saturated.
func (p *Pool) Submit(task func()) {
	select {
	case p.tasks <- task:
		return
	default:
	}

	if p.trySpawn(task) {
		return
	}

	// Backpressure: wait for a queue slot.
	p.tasks <- task
}

// Close stops accepting work and blocks until every queued task has run
// and every worker has exited.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.tasks)
	_ = p.group.Wait() // workers never return errors
}

// Workers returns the number of live workers.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Peak returns the highest number of workers alive at once.
func (p *Pool) Peak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

// trySpawn starts a worker if below MaxWorkers. first, if non-nil, is run
// before the worker starts draining the queue.
func (p *Pool) trySpawn(first func()) bool {
	p.mu.Lock()
	if p.closed || p.workers >= p.cfg.MaxWorkers {
		p.mu.Unlock()
		return false
	}
	p.workers++
	if p.workers > p.peak {
		p.peak = p.workers
	}
	p.mu.Unlock()

	p.group.Go(func() error {
		p.work(first)
		return nil
	})
	return true
}

func (p *Pool) work(first func()) {
	if first != nil {
		first()
	}

	idle := time.NewTimer(p.cfg.IdleTimeout)
	defer idle.Stop()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				p.exit()
				return
			}
			task()
			idle.Reset(p.cfg.IdleTimeout)
		case <-idle.C:
			if p.retire() {
				return
			}
			idle.Reset(p.cfg.IdleTimeout)
		}
	}
}

// retire removes an idle worker if the pool is above its minimum.
func (p *Pool) retire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.workers <= p.cfg.MinWorkers {
		return false
	}
	p.workers--
	return true
}

func (p *Pool) exit() {
	p.mu.Lock()
	p.workers--
	p.mu.Unlock()
}
