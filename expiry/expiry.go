// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package expiry - lease lengths of the mapping types
package expiry

import (
	"math"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/mapping"
)

// NoExpiry - lease length of the perpetual types
const NoExpiry = uint64(math.MaxUint64)

// renewal is still accepted this long after a lease ends
const renewDays = 31

// fakechain leases are short enough to expire inside a test
const fakechainBlocksPerYear = 10

// Blocks - lease length and renew window in blocks for type t
func Blocks(network string, t mapping.Type) (blocks uint64, renewWindow uint64) {
	years := t.Years()
	if 0 == years {
		return NoExpiry, 0
	}
	if chain.Fakechain == network {
		return years * fakechainBlocksPerYear, 0
	}
	perDay := chain.BlocksPerDay(network)
	return years * 365 * perDay, renewDays * perDay
}

// Height - first height at which a record registered at registerHeight
// is no longer active; ok is false for perpetual types
func Height(network string, t mapping.Type, registerHeight uint64) (height uint64, ok bool) {
	blocks, _ := Blocks(network, t)
	if NoExpiry == blocks {
		return 0, false
	}
	return registerHeight + blocks, true
}

// Active - record registered at registerHeight is within its lease at height
func Active(network string, t mapping.Type, registerHeight uint64, height uint64) bool {
	end, ok := Height(network, t, registerHeight)
	return !ok || height < end
}

// Renewable - within the lease or the renew window that follows it
func Renewable(network string, t mapping.Type, registerHeight uint64, height uint64) bool {
	end, ok := Height(network, t, registerHeight)
	if !ok {
		return true
	}
	_, window := Blocks(network, t)
	return height < end+window
}
