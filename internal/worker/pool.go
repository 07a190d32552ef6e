package worker

import (
	"context"
	"sync"
	"time"
)

// Task is a named unit of work
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result is the outcome of one task
type Result struct {
	Name    string
	Index   int // Submission order
	Err     error
	Elapsed time.Duration
}

type job struct {
	index int
	task  Task
}

// Pool runs tasks on a fixed number of goroutines
type Pool struct {
	workers    int
	jobQueue   chan job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
	submitted  int

	collected []Result
	collectWg sync.WaitGroup
}

// NewPool creates a pool whose tasks run under a child of ctx
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers and the result collector
func (p *Pool) Start() {
	p.collectWg.Add(1)
	go func() {
		defer p.collectWg.Done()
		for r := range p.results {
			p.collected = append(p.collected, r)
		}
	}()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case j, ok := <-p.jobQueue:
			if !ok {
				return
			}
			start := time.Now()
			err := j.task.Run(p.ctx)
			result := Result{Name: j.task.Name, Index: j.index, Err: err, Elapsed: time.Since(start)}
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task. It is dropped once the pool is cancelled.
// Submit must not be called concurrently with itself or after Wait.
func (p *Pool) Submit(t Task) {
	j := job{index: p.submitted, task: t}
	p.submitted++
	select {
	case <-p.ctx.Done():
	case p.jobQueue <- j:
	}
}

// Wait closes the queue, waits for the workers and returns results in
// completion order
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	p.collectWg.Wait()
	p.cancelFunc()
	return p.collected
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
