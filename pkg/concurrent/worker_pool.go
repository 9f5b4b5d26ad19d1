package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// Job. payload tagged with its submission position
type Job[T any] struct {
	Index   int
	Payload T
}

type Result[G any] struct {
	Index int
	Value G
}

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan Job[T]
	results    chan Result[G]
	wg         sync.WaitGroup
	submitted  int
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- Result[G]{Index: job.Index, Value: jobFunc(job.Payload)}
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// AddJob. not safe for concurrent use, jobs are numbered in call order
func (wp *WorkerPool[T, G]) AddJob(payload T) {
	wp.jobQueue <- Job[T]{Index: wp.submitted, Payload: payload}
	wp.submitted++
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) CollectResults() chan Result[G] {
	return wp.results
}

// RunOrdered. apply jobFunc to every item on numWorkers goroutines, results keep the order of items
func RunOrdered[T any, G any](numWorkers int, items []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(items))
	wp.Start(jobFunc)
	for _, item := range items {
		wp.AddJob(item)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(items))
	for res := range wp.CollectResults() {
		out[res.Index] = res.Value
	}
	return out
}
