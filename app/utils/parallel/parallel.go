// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel provides a semaphore-based worker pool for running
// tasks with bounded concurrency.
//
// The validator fans out over many discovered instances at once (health
// probes, database connectivity), but each task holds a network
// connection, so the pool caps how many run simultaneously. A Manager
// bounds the concurrency; a Waiter aggregates completion and errors for
// one batch of tasks.
package parallel

import (
	"runtime"
	"sync"
)

const errChannelBuffer = 100

// Task is one unit of work submitted to a Manager.
type Task func() error

// Manager runs tasks with bounded concurrency.
type Manager struct {
	wg        *sync.WaitGroup
	semaphore chan struct{}
}

// New creates a Manager running at most workerCount tasks at once. A
// non-positive count scales with the host's CPU count.
func New(workerCount int) *Manager {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	return &Manager{
		wg:        &sync.WaitGroup{},
		semaphore: make(chan struct{}, workerCount),
	}
}

// acquire blocks until a worker slot is free.
func (p *Manager) acquire() {
	p.semaphore <- struct{}{}
	p.wg.Add(1)
}

// release frees the acquired worker slot.
func (p *Manager) release() {
	p.wg.Done()
	<-p.semaphore
}

// Run submits a task, blocking while all worker slots are busy. The
// task's error, if any, is delivered on the waiter's error channel.
func (p *Manager) Run(fn Task, waiter *Waiter) {
	waiter.wg.Add(1)
	p.acquire()
	go func() {
		defer waiter.wg.Done()
		defer p.release()

		if err := fn(); err != nil {
			waiter.errch <- err
		}
	}()
}

// Close waits for all submitted tasks to finish.
func (p *Manager) Close() {
	p.wg.Wait()
	close(p.semaphore)
}

// Waiter collects completion and errors for one batch of tasks.
type Waiter struct {
	wg    sync.WaitGroup
	errch chan error
}

func NewWaiter() *Waiter {
	return &Waiter{
		errch: make(chan error, errChannelBuffer),
	}
}

// Wait blocks until every submitted task has finished, then closes the
// error channel.
func (w *Waiter) Wait() {
	w.wg.Wait()
	close(w.errch)
}

// Err returns the read-only error channel. Drain it after Wait.
func (w *Waiter) Err() <-chan error {
	return w.errch
}
