// Package worker runs notation parsing jobs on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
)

// Job is one text to be parsed: a whole file or an in-memory document.
// Path, when set, names the file the job function loads the text from.
type Job struct {
	Index int    // Position of the job in submission order
	Name  string // File name or other label, for reporting
	Path  string
	Text  string
}

// Result is the outcome of one Job.
type Result struct {
	Index   int
	Name    string
	Games   []*chess.Game
	Skipped int   // Regions the reader dropped as unparseable
	Err     error // Set when the job's text could not be loaded
}

// Func handles a single job.
type Func func(job Job) Result

// Pool fans jobs out to workers. Results arrive in completion order; use
// Result.Index to restore submission order.
type Pool struct {
	workers int
	buffer  int
	fn      Func

	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.buffer = n
		}
	}
}

// New creates a pool running fn. It defaults to one worker and a buffer of 16.
func New(fn Func, opts ...Option) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  16,
		fn:      fn,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.buffer)
	p.results = make(chan Result, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- p.fn(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close ends job submission, waits for the workers and closes the result
// channel. Results must be drained concurrently or Close may block.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of completed jobs.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
