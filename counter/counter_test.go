// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "start")
	assert.Equal(t, uint64(1), c.Increment(), "increment")
	assert.Equal(t, uint64(2), c.Increment(), "increment")
	assert.Equal(t, uint64(1), c.Decrement(), "decrement")
	assert.Equal(t, uint64(0), c.Decrement(), "decrement")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	const maximum = 5
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0
	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(maximum) {
				mu.Lock()
				acquired += 1
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, maximum, acquired, "acquired")
	assert.Equal(t, uint64(maximum), c.Uint64(), "value")
	assert.False(t, c.Acquire(maximum), "full")
}
