// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/payglobal/ess-validator/app/utils/parallel"
)

func TestManager_RunsEveryTask(t *testing.T) {
	pool := parallel.New(3)
	defer pool.Close()
	waiter := parallel.NewWaiter()

	var done atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Run(func() error {
			done.Add(1)
			return nil
		}, waiter)
	}
	waiter.Wait()

	assert.Equal(t, int32(20), done.Load())
}

func TestManager_BoundsConcurrency(t *testing.T) {
	const limit = 2
	pool := parallel.New(limit)
	defer pool.Close()
	waiter := parallel.NewWaiter()

	var mu sync.Mutex
	var inFlight, peak int

	for i := 0; i < 10; i++ {
		pool.Run(func() error {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		}, waiter)
	}
	waiter.Wait()

	assert.LessOrEqual(t, peak, limit)
}

func TestWaiter_CollectsErrors(t *testing.T) {
	pool := parallel.New(2)
	defer pool.Close()
	waiter := parallel.NewWaiter()

	for i := 0; i < 5; i++ {
		i := i
		pool.Run(func() error {
			if i%2 == 0 {
				return errors.New("probe failed")
			}
			return nil
		}, waiter)
	}
	waiter.Wait()

	var count int
	for range waiter.Err() {
		count++
	}
	assert.Equal(t, 3, count)
}
