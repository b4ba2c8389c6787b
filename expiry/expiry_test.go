// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expiry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/expiry"
	"github.com/loki-project/lnsd/mapping"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		network string
		t       mapping.Type
		blocks  uint64
		window  uint64
	}{
		{chain.Mainnet, mapping.Session, expiry.NoExpiry, 0},
		{chain.Mainnet, mapping.Wallet, expiry.NoExpiry, 0},
		{chain.Mainnet, mapping.Lokinet1Year, 365 * 720, 31 * 720},
		{chain.Testnet, mapping.Lokinet2Years, 2 * 365 * 720, 31 * 720},
		{chain.Devnet, mapping.Lokinet10Years, 10 * 365 * 720, 31 * 720},
		{chain.Fakechain, mapping.Lokinet1Year, 10, 0},
		{chain.Fakechain, mapping.Lokinet5Years, 50, 0},
		{chain.Fakechain, mapping.Session, expiry.NoExpiry, 0},
	}
	for i, item := range tests {
		blocks, window := expiry.Blocks(item.network, item.t)
		assert.Equal(t, item.blocks, blocks, "%d: blocks", i)
		assert.Equal(t, item.window, window, "%d: window", i)
	}
}

func TestActive(t *testing.T) {
	assert.True(t, expiry.Active(chain.Fakechain, mapping.Lokinet1Year, 100, 109), "last active block")
	assert.False(t, expiry.Active(chain.Fakechain, mapping.Lokinet1Year, 100, 110), "expired")
	assert.False(t, expiry.Renewable(chain.Fakechain, mapping.Lokinet1Year, 100, 110), "no window")
	assert.True(t, expiry.Active(chain.Fakechain, mapping.Session, 100, 1<<62), "perpetual")

	end := uint64(100 + 365*720)
	assert.False(t, expiry.Active(chain.Mainnet, mapping.Lokinet1Year, 100, end), "mainnet expired")
	assert.True(t, expiry.Renewable(chain.Mainnet, mapping.Lokinet1Year, 100, end), "in window")
	assert.False(t, expiry.Renewable(chain.Mainnet, mapping.Lokinet1Year, 100, end+31*720), "after window")

	_, ok := expiry.Height(chain.Mainnet, mapping.Wallet, 5)
	assert.False(t, ok, "wallet")
}
