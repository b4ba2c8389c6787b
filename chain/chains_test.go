// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Mainnet, chain.Testnet, chain.Devnet, chain.Fakechain} {
		assert.True(t, chain.Valid(name), name)
	}
	assert.False(t, chain.Valid("bitmark"), "foreign chain")
	assert.False(t, chain.Valid(""), "empty")
}

func TestBlocksPerDay(t *testing.T) {
	assert.Equal(t, uint64(720), chain.BlocksPerDay(chain.Mainnet), "mainnet")
	assert.False(t, chain.IsTesting(chain.Mainnet), "mainnet")
	assert.True(t, chain.IsTesting(chain.Fakechain), "fakechain")
}
