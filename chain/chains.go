// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet   = "mainnet"
	Testnet   = "testnet"
	Devnet    = "devnet"
	Fakechain = "fakechain"
)

// TargetBlockSeconds - block interval on every chain
const TargetBlockSeconds = 120

// NameSystemVersion - first hard fork that accepts name system entries
const NameSystemVersion = 15

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Devnet, Fakechain:
		return true
	default:
		return false
	}
}

// IsTesting - true for chains whose coins carry no value
func IsTesting(name string) bool {
	return Mainnet != name
}

// BlocksPerDay - expected number of blocks in 24 hours
func BlocksPerDay(name string) uint64 {
	return 86400 / TargetBlockSeconds
}
