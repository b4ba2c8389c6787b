// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/transactionrecord"
)

// maximum transactions accepted in one block
const MaximumTransactions = 10000

// Header - the parts of a host block header the ledger reads
type Header struct {
	Height       uint64        `json:"height"`
	Hash         digest.Digest `json:"hash"`
	MajorVersion uint8         `json:"major_version"`
	Timestamp    uint64        `json:"timestamp"`
}

// Block - a finalized block as delivered by the host pipeline
type Block struct {
	Header       Header                          `json:"header"`
	Transactions []transactionrecord.Transaction `json:"transactions"`
}

// Validate - sanity checks on a delivered block; consensus validity
// is the host chain's concern
func (block *Block) Validate() error {
	if block.Header.Hash.IsZero() {
		return fault.ErrNotDigest
	}
	if len(block.Transactions) > MaximumTransactions {
		return fault.ErrInvalidCount
	}
	seen := make(map[digest.Digest]struct{}, len(block.Transactions))
	for i := range block.Transactions {
		txId := block.Transactions[i].TxId
		if _, ok := seen[txId]; ok {
			return fault.ErrDuplicateTransaction
		}
		seen[txId] = struct{}{}
	}
	return nil
}
