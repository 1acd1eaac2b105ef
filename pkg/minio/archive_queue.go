package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// archiveQueue stores objects on a fixed pool of workers. Task states are kept
// for taskRetention after they finish so callers can poll them.
type archiveQueue struct {
	put   putFunc
	tasks chan archiveTask
	now   func() time.Time

	mu     sync.RWMutex
	states map[string]*TaskState
	closed bool

	stop chan struct{}
	wg   sync.WaitGroup
}

func newArchiveQueue(put putFunc, workers, size int) *archiveQueue {
	if workers <= 0 {
		workers = DefaultArchiveWorkers
	}
	if size <= 0 {
		size = DefaultArchiveQueueSize
	}
	q := &archiveQueue{
		put:    put,
		tasks:  make(chan archiveTask, size),
		now:    time.Now,
		states: make(map[string]*TaskState),
		stop:   make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.work()
	}
	q.wg.Add(1)
	go q.sweepLoop()
	return q
}

// enqueue never blocks. The task keeps running after ctx is cancelled.
func (q *archiveQueue) enqueue(ctx context.Context, req *UploadRequest) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return "", ErrClosed
	}

	id := uuid.NewString()
	task := archiveTask{id: id, ctx: context.WithoutCancel(ctx), req: req}
	select {
	case q.tasks <- task:
	default:
		return "", ErrQueueFull
	}
	q.states[id] = &TaskState{TaskID: id, Object: req.ObjectName, Status: TaskQueued, UpdatedAt: q.now()}
	return id, nil
}

func (q *archiveQueue) state(id string) (TaskState, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	st, ok := q.states[id]
	if !ok {
		return TaskState{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return *st, nil
}

func (q *archiveQueue) wait(id string, timeout time.Duration) (TaskState, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(waitPollInterval)
	defer tick.Stop()

	for {
		st, err := q.state(id)
		if err != nil {
			return TaskState{}, err
		}
		if st.Status.Finished() {
			return st, nil
		}
		select {
		case <-deadline.C:
			return st, fmt.Errorf("%w: %s", ErrWaitTimeout, id)
		case <-tick.C:
		}
	}
}

// close stops accepting tasks, drains the queue and waits for the workers.
func (q *archiveQueue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	close(q.stop)
	q.wg.Wait()
}

func (q *archiveQueue) work() {
	defer q.wg.Done()
	for task := range q.tasks {
		q.setStatus(task.id, TaskRunning, nil, nil)
		info, err := q.put(task.ctx, task.req)
		if err != nil {
			q.setStatus(task.id, TaskFailed, nil, err)
			continue
		}
		q.setStatus(task.id, TaskDone, info, nil)
	}
}

func (q *archiveQueue) setStatus(id string, status TaskStatus, info *FileInfo, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	st, ok := q.states[id]
	if !ok {
		return
	}
	st.Status = status
	st.Info = info
	st.Err = err
	st.UpdatedAt = q.now()
}

func (q *archiveQueue) sweepLoop() {
	defer q.wg.Done()
	t := time.NewTicker(taskSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-q.stop:
			return
		case <-t.C:
			q.sweep()
		}
	}
}

func (q *archiveQueue) sweep() {
	q.mu.Lock()
	defer q.mu.Unlock()
	cutoff := q.now().Add(-taskRetention)
	for id, st := range q.states {
		if st.Status.Finished() && st.UpdatedAt.Before(cutoff) {
			delete(q.states, id)
		}
	}
}
