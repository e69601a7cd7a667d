package workers

import (
	"context"
	"fmt"
	"group-chat/contract"
	"group-chat/errors"
	"log/slog"
	"sync"
	"time"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// FailureHook is told about a worker that returned an error.
type FailureHook func(workerName string, err error)

// Supervisor Own a context and a Cancel function
// Run each worker in a goroutine
// Restart workers that panic
// Report workers returning an error to the failure hook, without restarting them
// Shutdown properly if parent context is canceled
type Supervisor struct {
	mu        sync.Mutex
	cancel    context.CancelFunc // To stop the context
	stopped   bool
	wg        *sync.WaitGroup // Wait for the end of goroutines
	log       *slog.Logger
	workers   []contract.Worker
	onFailure FailureHook
}

func NewSupervisor(log *slog.Logger, onFailure FailureHook) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, onFailure: onFailure}
}

// Run starts every added worker and blocks until all of them returned.
//
//	// If the parent cancels, we Cancel.
//	// If WE call s.Stop(), only our children Cancel.
func (s *Supervisor) Run(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	workers := s.workers
	s.mu.Unlock()
	// Safety: ensure resources are cleaned up when Run exits
	defer cancel()

	for _, worker := range workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics,
// the supervisor recovers and restarts it. A returned error is final: the
// worker is not restarted and the failure hook decides what happens next.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Debug(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			panicked := false
			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						panicked = true
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart !
				s.log.Debug(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if !panicked {
				s.log.Debug("Worker failed", "name", workerName, "error", err)
				if s.onFailure != nil {
					s.onFailure(workerName, err)
				}
				return
			}

			if ctx.Err() != nil {
				s.log.Debug("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				// Context canceled: priority stop.
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

// Stop cancels the supervised context so that crashed workers are not restarted.
// A Stop before Run prevents Run from starting anything.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
