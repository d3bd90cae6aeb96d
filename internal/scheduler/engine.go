package scheduler

import (
	"container/heap"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidDueTime = errors.New("scheduler: invalid due time")

// FireEvent is emitted on the out channel when an armed task timer expires.
type FireEvent struct {
	TaskID string
	Title  string
	DueAt  time.Time
}

type queueItem struct {
	event FireEvent
	gen   uint64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].event.DueAt.Before(pq[j].event.DueAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Engine holds at most one live timer per task. Arming a task that is already
// armed replaces the previous timer; Cancel invalidates it so a pending
// expiry becomes a no-op. A single goroutine drains due entries to the out
// channel.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	armed   map[string]uint64
	gen     uint64
	out     chan FireEvent
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		armed:  make(map[string]uint64),
		out:    make(chan FireEvent, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan FireEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Arm schedules a one-shot timer for the task's due instant. Any previously
// armed timer for the same task is superseded.
func (e *Engine) Arm(ev FireEvent) error {
	if strings.TrimSpace(ev.TaskID) == "" || ev.DueAt.IsZero() {
		return ErrInvalidDueTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	e.gen++
	e.armed[ev.TaskID] = e.gen
	heap.Push(&e.queue, queueItem{event: ev, gen: e.gen})
	e.signalWakeup()
	return nil
}

// Cancel invalidates the pending timer for the task, if any. The queued entry
// is skipped when it comes due.
func (e *Engine) Cancel(taskID string) {
	e.mu.Lock()
	delete(e.armed, taskID)
	e.mu.Unlock()
	e.signalWakeup()
}

// Armed reports whether the task currently has a live timer.
func (e *Engine) Armed(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.armed[taskID]
	return ok
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.DueAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

// peek returns the earliest live entry, pruning entries invalidated by Cancel
// or a newer Arm along the way.
func (e *Engine) peek() (FireEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.armed[head.event.TaskID] == head.gen {
			return head.event, true
		}
		heap.Pop(&e.queue)
	}
	return FireEvent{}, false
}

func (e *Engine) popDue(now time.Time) []FireEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]FireEvent, 0)
	for len(e.queue) > 0 {
		next := e.queue[0]
		if next.event.DueAt.After(now) {
			break
		}
		heap.Pop(&e.queue)
		if e.armed[next.event.TaskID] != next.gen {
			continue
		}
		delete(e.armed, next.event.TaskID)
		out = append(out, next.event)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
