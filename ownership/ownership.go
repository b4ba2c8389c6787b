// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/expiry"
	"github.com/loki-project/lnsd/mapping"
)

// Owner - a public key with its ledger assigned id
type Owner struct {
	ID  int64             `json:"id"`
	Key account.PublicKey `json:"key"`
}

// Mapping - one revision of a name
//
// the zero PrevTxId marks a fresh registration; TxIndex orders
// revisions registered in the same block
type Mapping struct {
	Type           mapping.Type      `json:"type"`
	NameHash       digest.Digest     `json:"name_hash"`
	EncryptedValue mapping.Value     `json:"encrypted_value"`
	RegisterHeight uint64            `json:"register_height"`
	TxIndex        uint32            `json:"tx_index"`
	OwnerID        int64             `json:"owner_id"`
	OwnerKey       account.PublicKey `json:"owner"`
	TxId           digest.Digest     `json:"txid"`
	PrevTxId       digest.Digest     `json:"prev_txid"`
}

// Settings - the ledger checkpoint
type Settings struct {
	TopHeight uint64        `json:"top_height"`
	TopHash   digest.Digest `json:"top_hash"`
	Version   uint32        `json:"version"`
}

// IsFresh - true if the record does not supersede another
func (m *Mapping) IsFresh() bool {
	return m.PrevTxId.IsZero()
}

// Active - lease has not ended at height
//
// this ignores superseding records, the ledger adds that check
func (m *Mapping) Active(network string, height uint64) bool {
	return expiry.Active(network, m.Type, m.RegisterHeight, height)
}

// Renewable - lease or renew window has not ended at height
func (m *Mapping) Renewable(network string, height uint64) bool {
	return expiry.Renewable(network, m.Type, m.RegisterHeight, height)
}

// ExpiryHeight - first inactive height, ok false for perpetual types
func (m *Mapping) ExpiryHeight(network string) (height uint64, ok bool) {
	return expiry.Height(network, m.Type, m.RegisterHeight)
}
