// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "single")

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "several")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10), "over maximum")

	// burst smaller than the request can never be satisfied
	small := rate.NewLimiter(100, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 5, 10), "over burst")
}
